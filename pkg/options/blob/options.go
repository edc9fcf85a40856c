// Package blob provides object storage configuration options.
package blob

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Options defines configuration options for the S3-compatible object store.
type Options struct {
	// Endpoint is the object store address (host:port, no scheme).
	Endpoint string `json:"endpoint" mapstructure:"endpoint"`

	// AccessKey and SecretKey are the credentials.
	AccessKey string `json:"access-key" mapstructure:"access-key"`
	SecretKey string `json:"secret-key" mapstructure:"secret-key"`

	// Bucket is the bucket holding uploaded documents.
	Bucket string `json:"bucket" mapstructure:"bucket"`

	// Region is the bucket region, used to build public object URLs.
	Region string `json:"region" mapstructure:"region"`

	// UseSSL enables TLS for object store connections.
	UseSSL bool `json:"use-ssl" mapstructure:"use-ssl"`
}

// NewOptions creates a new Options object with default values.
func NewOptions() *Options {
	return &Options{
		Endpoint: "s3.amazonaws.com",
		Region:   "us-east-1",
		UseSSL:   true,
	}
}

// Validate checks if the options are valid.
func (o *Options) Validate() error {
	if o.Endpoint == "" {
		return fmt.Errorf("blob.endpoint cannot be empty")
	}
	if o.Bucket == "" {
		return fmt.Errorf("blob.bucket cannot be empty")
	}
	return nil
}

// AddFlags adds flags for blob options to the specified FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Endpoint, "blob.endpoint", o.Endpoint, "Object store endpoint (host:port)")
	fs.StringVar(&o.AccessKey, "blob.access-key", o.AccessKey, "Object store access key")
	fs.StringVar(&o.SecretKey, "blob.secret-key", o.SecretKey, "Object store secret key")
	fs.StringVar(&o.Bucket, "blob.bucket", o.Bucket, "Bucket for uploaded documents")
	fs.StringVar(&o.Region, "blob.region", o.Region, "Bucket region")
	fs.BoolVar(&o.UseSSL, "blob.use-ssl", o.UseSSL, "Use TLS for object store connections")
}
