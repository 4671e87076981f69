package snapshot

type Config struct {
	S3 S3Config `mapstructure:"s3"`
}

type S3Config struct {
	Bucket string `mapstructure:"bucket"`
	Region string `mapstructure:"region"`
	Prefix string `mapstructure:"prefix"`

	// PathStyle and Endpoint are for self-hosted S3-compatible storage, such as minio.
	PathStyle bool   `mapstructure:"path_style"`
	Endpoint  string `mapstructure:"endpoint"`
}
