// Package settings defines application-level configuration data.
package settings

import "time"

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	NextField string `yaml:"next_field" kong:"help='Next field key',default='tab'"`
	PrevField string `yaml:"prev_field" kong:"help='Previous field key',default='shift+tab'"`
	Up        string `yaml:"up" kong:"help='Up key',default='up,k'"`
	Down      string `yaml:"down" kong:"help='Down key',default='down,j'"`
	Left      string `yaml:"left" kong:"help='Previous option key',default='left,h'"`
	Right     string `yaml:"right" kong:"help='Next option key',default='right,l'"`
	Toggle    string `yaml:"toggle" kong:"help='Toggle checkbox/menu key',default='space'"`
	Open      string `yaml:"open" kong:"help='Activate key',default='enter'"`
	Submit    string `yaml:"submit" kong:"help='Submit form key',default='ctrl+s'"`
	Back      string `yaml:"back" kong:"help='Back key',default='esc'"`
	Browse    string `yaml:"browse" kong:"help='Open result page key',default='o'"`
	Quit      string `yaml:"quit" kong:"help='Quit key',default='q'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Accent   string `yaml:"accent" kong:"help='Accent color',default='208'"`
	Muted    string `yaml:"muted" kong:"help='Muted text color',default='244'"`
	Markdown string `yaml:"markdown" kong:"help='Glamour style for the results view (dark/light/notty)',default='dark'"`
}

// APIConfig defines how the generation service is reached.
type APIConfig struct {
	BaseURL        string `yaml:"base_url" kong:"help='Generation service base URL',default='http://localhost:5000'"`
	GeneratePath   string `yaml:"generate_path" kong:"help='Generate endpoint path',default='/generate'"`
	ResultURL      string `yaml:"result_url" kong:"help='Page opened from the results view',default='http://localhost:5000/download'"`
	TimeoutSeconds int    `yaml:"timeout_seconds" kong:"help='Request timeout in seconds, 0 waits indefinitely',default='0'"`
}

// Timeout returns the configured request timeout.
func (c APIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LogConfig defines diagnostic logging.
type LogConfig struct {
	File  string `yaml:"file" kong:"help='Diagnostic log file, - disables logging'"`
	Debug bool   `yaml:"debug" kong:"help='Log at debug level',default='false'"`
}

// Settings represents the application configuration.
type Settings struct {
	API         APIConfig    `yaml:"api" kong:"embed,prefix='api.'"`
	KeyMap      KeyMapConfig `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme       ThemeConfig  `yaml:"theme" kong:"embed,prefix='theme.'"`
	Log         LogConfig    `yaml:"log" kong:"embed,prefix='log.'"`
	JournalFile string       `yaml:"journal_file" kong:"help='Submission journal path, - disables the journal'"`
	RecentLimit int          `yaml:"recent_limit" kong:"help='Attempts listed in the results view',default='5'"`
}

// JournalEnabled reports whether submission attempts should be persisted.
func (s Settings) JournalEnabled() bool {
	return s.JournalFile != "" && s.JournalFile != Disabled
}

// Disabled is the path value that turns a file-backed feature off.
const Disabled = "-"
