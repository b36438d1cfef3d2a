package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iupr/ocroam/internal/domain"
)

func TestRenderStringSingleVar(t *testing.T) {
	out, err := RenderString("lib_LIBRARIES = {{LIBRARY}}", map[string]string{"LIBRARY": "libocropus.a"})
	require.NoError(t, err)
	assert.Equal(t, "lib_LIBRARIES = libocropus.a", out)
}

func TestRenderStringMultipleVars(t *testing.T) {
	out, err := RenderString("{{ DIR }}=$(includedir)/{{NAME}}", map[string]string{
		"DIR":  "ocropusincludedir",
		"NAME": "ocropus",
	})
	require.NoError(t, err)
	assert.Equal(t, "ocropusincludedir=$(includedir)/ocropus", out)
}

func TestRenderStringLeavesMakeVariables(t *testing.T) {
	in := "modeldir=${datadir}/ocropus/models\nmodel_DATA = $(srcdir)/data/models/*"
	out, err := RenderString(in, nil)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestRenderStringMissingVar(t *testing.T) {
	_, err := RenderString("Hello {{name}}", map[string]string{})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidConfig), "got %v", err)
}

func TestRenderStringMalformed(t *testing.T) {
	for _, in := range []string{"{{unclosed", "{{ }}"} {
		_, err := RenderString(in, map[string]string{})
		assert.Error(t, err, in)
	}
}

func TestRenderStringEmpty(t *testing.T) {
	out, err := RenderString("", nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
