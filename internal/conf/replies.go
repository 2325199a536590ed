package conf

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RepliesConfig contains every user-visible string the bot sends.
// The defaults match the strings the operator originally shipped (French).
type RepliesConfig struct {
	Menu     MenuReplies     `yaml:"menu"`
	Sources  SourceReplies   `yaml:"sources"`
	Forward  ForwardReplies  `yaml:"forward"`
	Callback CallbackReplies `yaml:"callback"`
	Stats    StatsReplies    `yaml:"stats"`
}

// MenuReplies contains the /menu caption and button labels
type MenuReplies struct {
	Caption      string `yaml:"caption"`
	AddSource    string `yaml:"add_source"`
	RemoveSource string `yaml:"remove_source"`
	ListSources  string `yaml:"list_sources"`
	StopForward  string `yaml:"stop_forward"`
	StartForward string `yaml:"start_forward"`
}

// SourceReplies contains registry command replies
type SourceReplies struct {
	UsageAdd    string `yaml:"usage_add"`
	UsageRemove string `yaml:"usage_remove"`
	Added       string `yaml:"added"`       // {{id}}
	Removed     string `yaml:"removed"`     // {{id}}
	Exists      string `yaml:"exists"`
	Missing     string `yaml:"missing"`
	ListHeader  string `yaml:"list_header"` // {{list}}
	ListEmpty   string `yaml:"list_empty"`
}

// ForwardReplies contains gate command replies
type ForwardReplies struct {
	Started string `yaml:"started"`
	Stopped string `yaml:"stopped"`
}

// CallbackReplies contains inline button acknowledgments
type CallbackReplies struct {
	AddHint    string `yaml:"add_hint"`
	RemoveHint string `yaml:"remove_hint"`
}

// StatsReplies contains the /stats and /deadletters report templates
type StatsReplies struct {
	Report     string `yaml:"report"` // {{forwarded}}, {{failed}}, {{dead}}, {{state}}
	On         string `yaml:"on"`
	Off        string `yaml:"off"`
	DeadHeader string `yaml:"dead_header"` // {{list}}
	DeadEmpty  string `yaml:"dead_empty"`
}

// DefaultRepliesConfig returns the built-in reply strings.
func DefaultRepliesConfig() *RepliesConfig {
	return &RepliesConfig{
		Menu: MenuReplies{
			Caption:      "Menu de gestion du userbot:",
			AddSource:    "Ajouter source",
			RemoveSource: "Supprimer source",
			ListSources:  "Lister sources",
			StopForward:  "Stopper forward",
			StartForward: "Démarrer forward",
		},
		Sources: SourceReplies{
			UsageAdd:    "Usage: /addsource <chat_id>",
			UsageRemove: "Usage: /removesource <chat_id>",
			Added:       "Source {{id}} ajoutée avec succès",
			Removed:     "Source {{id}} supprimée avec succès",
			Exists:      "Cette source est déjà dans la liste",
			Missing:     "Cette source n'est pas dans la liste",
			ListHeader:  "Sources configurées:\n{{list}}",
			ListEmpty:   "Aucune source configurée",
		},
		Forward: ForwardReplies{
			Started: "Forwarding started",
			Stopped: "Forwarding stopped",
		},
		Callback: CallbackReplies{
			AddHint:    "Utilisez /addsource <chat_id>",
			RemoveHint: "Utilisez /removesource <chat_id>",
		},
		Stats: StatsReplies{
			Report:     "Forward: {{state}}\nTransférés: {{forwarded}}\nÉchecs: {{failed}}\nDead letters: {{dead}}",
			On:         "started",
			Off:        "stopped",
			DeadHeader: "Derniers échecs:\n{{list}}",
			DeadEmpty:  "Aucun échec enregistré",
		},
	}
}

// LoadRepliesConfig loads reply strings from a YAML file, falling back to
// the defaults when no file is found. Empty fields keep their default.
func LoadRepliesConfig(configPath string) (*RepliesConfig, error) {
	paths := []string{configPath}
	if configPath == "" {
		paths = []string{
			"configs/replies.yaml",
			"./configs/replies.yaml",
		}
		if execPath, err := os.Executable(); err == nil {
			paths = append(paths, filepath.Join(filepath.Dir(execPath), "configs", "replies.yaml"))
		}
	}

	var data []byte
	var loadedPath string
	var err error

	for _, p := range paths {
		if p == "" {
			continue
		}
		data, err = os.ReadFile(p)
		if err == nil {
			loadedPath = p
			break
		}
	}

	if data == nil {
		return DefaultRepliesConfig(), nil
	}

	fmt.Printf("[Config] Loading replies from: %s\n", loadedPath)

	var config RepliesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse replies.yaml: %w", err)
	}

	config.fillDefaults()

	return &config, nil
}

// fillDefaults fills in default values for empty fields
func (c *RepliesConfig) fillDefaults() {
	defaults := DefaultRepliesConfig()

	if c.Menu.Caption == "" {
		c.Menu.Caption = defaults.Menu.Caption
	}
	if c.Menu.AddSource == "" {
		c.Menu.AddSource = defaults.Menu.AddSource
	}
	if c.Menu.RemoveSource == "" {
		c.Menu.RemoveSource = defaults.Menu.RemoveSource
	}
	if c.Menu.ListSources == "" {
		c.Menu.ListSources = defaults.Menu.ListSources
	}
	if c.Menu.StopForward == "" {
		c.Menu.StopForward = defaults.Menu.StopForward
	}
	if c.Menu.StartForward == "" {
		c.Menu.StartForward = defaults.Menu.StartForward
	}

	if c.Sources.UsageAdd == "" {
		c.Sources.UsageAdd = defaults.Sources.UsageAdd
	}
	if c.Sources.UsageRemove == "" {
		c.Sources.UsageRemove = defaults.Sources.UsageRemove
	}
	if c.Sources.Added == "" {
		c.Sources.Added = defaults.Sources.Added
	}
	if c.Sources.Removed == "" {
		c.Sources.Removed = defaults.Sources.Removed
	}
	if c.Sources.Exists == "" {
		c.Sources.Exists = defaults.Sources.Exists
	}
	if c.Sources.Missing == "" {
		c.Sources.Missing = defaults.Sources.Missing
	}
	if c.Sources.ListHeader == "" {
		c.Sources.ListHeader = defaults.Sources.ListHeader
	}
	if c.Sources.ListEmpty == "" {
		c.Sources.ListEmpty = defaults.Sources.ListEmpty
	}

	if c.Forward.Started == "" {
		c.Forward.Started = defaults.Forward.Started
	}
	if c.Forward.Stopped == "" {
		c.Forward.Stopped = defaults.Forward.Stopped
	}

	if c.Callback.AddHint == "" {
		c.Callback.AddHint = defaults.Callback.AddHint
	}
	if c.Callback.RemoveHint == "" {
		c.Callback.RemoveHint = defaults.Callback.RemoveHint
	}

	if c.Stats.Report == "" {
		c.Stats.Report = defaults.Stats.Report
	}
	if c.Stats.On == "" {
		c.Stats.On = defaults.Stats.On
	}
	if c.Stats.Off == "" {
		c.Stats.Off = defaults.Stats.Off
	}
	if c.Stats.DeadHeader == "" {
		c.Stats.DeadHeader = defaults.Stats.DeadHeader
	}
	if c.Stats.DeadEmpty == "" {
		c.Stats.DeadEmpty = defaults.Stats.DeadEmpty
	}
}
