// Package jwt provides JWT configuration options.
//
// Configuration Example (YAML):
//
//	jwt:
//	  key: "your-secret-key-min-32-chars-long"
//	  signing-method: "HS256"
//	  expired: "15m"
//	  issuer: "doc-center"
package jwt

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

const (
	// DefaultSigningMethod is the default JWT signing algorithm.
	DefaultSigningMethod = "HS256"

	// DefaultExpired is the default token expiration time.
	DefaultExpired = 15 * time.Minute

	// DefaultIssuer is the default token issuer.
	DefaultIssuer = "doc-center"

	// MinKeyLength is the minimum required key length for HMAC algorithms.
	MinKeyLength = 32
)

// SupportedSigningMethods contains all supported JWT signing algorithms.
var SupportedSigningMethods = map[string]bool{
	"HS256": true,
	"HS384": true,
	"HS512": true,
}

// Options contains JWT configuration.
type Options struct {
	// Key is the secret key used to sign tokens.
	// Minimum length: 32 characters.
	Key string `json:"key" mapstructure:"key"`

	// SigningMethod is the JWT signing algorithm.
	// Supported: HS256, HS384, HS512. Default: HS256.
	SigningMethod string `json:"signing-method" mapstructure:"signing-method"`

	// Expired is the token expiration duration. Default: 15m.
	Expired time.Duration `json:"expired" mapstructure:"expired"`

	// Issuer is the token issuer (iss claim). Default: doc-center.
	Issuer string `json:"issuer" mapstructure:"issuer"`
}

// NewOptions creates a new Options with default values.
func NewOptions() *Options {
	return &Options{
		SigningMethod: DefaultSigningMethod,
		Expired:       DefaultExpired,
		Issuer:        DefaultIssuer,
	}
}

// AddFlags adds flags for JWT options to the specified FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Key, "jwt.key", o.Key, "JWT signing key (min 32 chars)")
	fs.StringVar(&o.SigningMethod, "jwt.signing-method", o.SigningMethod, "JWT signing algorithm (HS256, HS384, HS512)")
	fs.DurationVar(&o.Expired, "jwt.expired", o.Expired, "JWT token expiration duration")
	fs.StringVar(&o.Issuer, "jwt.issuer", o.Issuer, "JWT token issuer (iss claim)")
}

// Validate validates the JWT options.
func (o *Options) Validate() error {
	if !SupportedSigningMethods[o.SigningMethod] {
		return fmt.Errorf("unsupported signing method: %s", o.SigningMethod)
	}
	if o.Key == "" {
		return fmt.Errorf("jwt key is required")
	}
	if len(o.Key) < MinKeyLength {
		return fmt.Errorf("jwt key must be at least %d characters, got: %d", MinKeyLength, len(o.Key))
	}
	if o.Expired <= 0 {
		return fmt.Errorf("expired must be positive, got: %v", o.Expired)
	}
	return nil
}

// Complete fills in default values for unset fields.
func (o *Options) Complete() error {
	if o.SigningMethod == "" {
		o.SigningMethod = DefaultSigningMethod
	}
	if o.Expired == 0 {
		o.Expired = DefaultExpired
	}
	if o.Issuer == "" {
		o.Issuer = DefaultIssuer
	}
	return nil
}
