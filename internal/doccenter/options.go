package doccenter

import (
	"fmt"

	"github.com/spf13/pflag"

	blobopts "github.com/kart-io/doc-center/pkg/options/blob"
	dbopts "github.com/kart-io/doc-center/pkg/options/database"
	extractoropts "github.com/kart-io/doc-center/pkg/options/extractor"
	httpopts "github.com/kart-io/doc-center/pkg/options/http"
	jwtopts "github.com/kart-io/doc-center/pkg/options/jwt"
	logopts "github.com/kart-io/doc-center/pkg/options/logger"
	qaopts "github.com/kart-io/doc-center/pkg/options/qa"
	searchopts "github.com/kart-io/doc-center/pkg/options/search"
)

// Options contains the configuration for the doc-center server.
type Options struct {
	HTTP      *httpopts.Options      `json:"http" mapstructure:"http"`
	Log       *logopts.Options       `json:"log" mapstructure:"log"`
	Database  *dbopts.Options        `json:"database" mapstructure:"database"`
	Search    *searchopts.Options    `json:"search" mapstructure:"search"`
	Blob      *blobopts.Options      `json:"blob" mapstructure:"blob"`
	Extractor *extractoropts.Options `json:"extractor" mapstructure:"extractor"`
	QA        *qaopts.Options        `json:"qa" mapstructure:"qa"`
	JWT       *jwtopts.Options       `json:"jwt" mapstructure:"jwt"`
}

// NewOptions creates Options with default values.
func NewOptions() *Options {
	return &Options{
		HTTP:      httpopts.NewOptions(),
		Log:       logopts.NewOptions(),
		Database:  dbopts.NewOptions(),
		Search:    searchopts.NewOptions(),
		Blob:      blobopts.NewOptions(),
		Extractor: extractoropts.NewOptions(),
		QA:        qaopts.NewOptions(),
		JWT:       jwtopts.NewOptions(),
	}
}

// AddFlags adds all server flags to the flagset.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	o.HTTP.AddFlags(fs)
	o.Log.AddFlags(fs)
	o.Database.AddFlags(fs)
	o.Search.AddFlags(fs)
	o.Blob.AddFlags(fs)
	o.Extractor.AddFlags(fs)
	o.QA.AddFlags(fs)
	o.JWT.AddFlags(fs)
}

// Validate checks all option groups.
func (o *Options) Validate() error {
	if err := o.HTTP.Validate(); err != nil {
		return fmt.Errorf("http: %w", err)
	}
	if err := o.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := o.Database.Validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := o.Search.Validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if err := o.Blob.Validate(); err != nil {
		return fmt.Errorf("blob: %w", err)
	}
	if err := o.Extractor.Validate(); err != nil {
		return fmt.Errorf("extractor: %w", err)
	}
	if err := o.QA.Validate(); err != nil {
		return fmt.Errorf("qa: %w", err)
	}
	if err := o.JWT.Validate(); err != nil {
		return fmt.Errorf("jwt: %w", err)
	}
	return nil
}

// Complete fills in defaults for unset fields.
func (o *Options) Complete() error {
	return o.JWT.Complete()
}
