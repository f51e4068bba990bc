package config

import "github.com/spf13/viper"

// Viper keys for data locations.
const (
	keyVerificationFile = "data.verification_file"
	keyUploadsDir       = "data.uploads_dir"
)

// SetDefaults registers default data locations. The defaults match the
// original deployment layout: everything relative to the working directory.
func SetDefaults() {
	viper.SetDefault(keyVerificationFile, "verification_status.json")
	viper.SetDefault(keyUploadsDir, "uploads")
}

// VerificationFile returns the path of the verification status store.
func VerificationFile() string {
	return ExpandPath(viper.GetString(keyVerificationFile))
}

// UploadsDir returns the root directory for uploaded documents.
func UploadsDir() string {
	return ExpandPath(viper.GetString(keyUploadsDir))
}
