package sftp

// Config holds configuration for delivering exports over SFTP.
type Config struct {
	// Enabled turns on delivery of local exports after each run.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Host is the SFTP server host.
	Host string `mapstructure:"host" default:""`
	// Port is the SFTP server port.
	Port int `mapstructure:"port" default:"22"`
	// User is the login user.
	User string `mapstructure:"user" default:""`
	// Pass is the login password.
	Pass string `mapstructure:"pass" default:""`
	// RemoteDir is the directory exports are uploaded to. Created if missing.
	RemoteDir string `mapstructure:"remote_dir" default:"/"`
	// KnownHostsFile is used to verify the server key.
	KnownHostsFile string `mapstructure:"known_hosts_file" default:"~/.ssh/known_hosts"`
	// InsecureIgnoreHostKey skips server key verification.
	InsecureIgnoreHostKey bool `mapstructure:"insecure_ignore_host_key" default:"false"`
	// TimeoutSeconds bounds the SSH handshake.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"20"`
}
