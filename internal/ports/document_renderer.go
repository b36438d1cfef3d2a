package ports

import "github.com/iupr/ocroam/internal/domain"

// DocumentRenderer renders a categorized inventory as a build-configuration document.
type DocumentRenderer interface {
	Render(inv domain.Inventory) (string, error)
}
