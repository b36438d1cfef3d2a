package config

type YAMLFile struct {
	Ocroam YAMLConfig `yaml:"ocroam"`
}

type YAMLConfig struct {
	Layout   YAMLLayout   `yaml:"layout"`
	Build    YAMLBuild    `yaml:"build"`
	Generate YAMLGenerate `yaml:"generate"`
	Check    YAMLCheck    `yaml:"check"`
}

type YAMLLayout struct {
	DirPrefix   string `yaml:"dir_prefix"`
	IncludeDir  string `yaml:"include_dir"`
	UtilsDir    string `yaml:"utils_dir"`
	CommandsDir string `yaml:"commands_dir"`
	ScriptDir   string `yaml:"script_dir"`
	TestDataDir string `yaml:"test_data_dir"`
}

type YAMLBuild struct {
	Library       string `yaml:"library"`
	HeaderInstall string `yaml:"header_install"`
	HeaderDir     string `yaml:"header_dir"`
	DataDir       string `yaml:"data_dir"`
	StyleCheck    string `yaml:"style_check"`
	TestCPPFlags  string `yaml:"test_cppflags"`
	Project       string `yaml:"project"`
}

// A nil list keeps the default, an explicit empty list clears it.
type YAMLGenerate struct {
	ExtraDirs []string      `yaml:"extra_dirs"`
	Exclude   []string      `yaml:"exclude"`
	Features  []YAMLFeature `yaml:"features"`
}

type YAMLFeature struct {
	Name     string   `yaml:"name"`
	Guard    string   `yaml:"guard"`
	CPPFlags string   `yaml:"cppflags"`
	Sources  []string `yaml:"sources"`
	Mains    []string `yaml:"mains"`
}

type YAMLCheck struct {
	Markers   []string `yaml:"markers"`
	ExtraDirs []string `yaml:"extra_dirs"`
}
