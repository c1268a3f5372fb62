package parse

import "github.com/fomod-tools/fomod-designer/schema"

type parseOpts struct {
	info   *schema.Registry
	config *schema.Registry
}

type ParseOption func(*parseOpts)

// WithInfoRegistry substitutes the registry used for info.xml.
func WithInfoRegistry(r *schema.Registry) ParseOption {
	return func(po *parseOpts) { po.info = r }
}

// WithConfigRegistry substitutes the registry used for ModuleConfig.xml.
func WithConfigRegistry(r *schema.Registry) ParseOption {
	return func(po *parseOpts) { po.config = r }
}

func newParseOpts(opts []ParseOption) *parseOpts {
	po := &parseOpts{}
	for _, f := range opts {
		f(po)
	}
	if po.info == nil {
		po.info = schema.NewInfo()
	}
	if po.config == nil {
		po.config = schema.NewConfig()
	}
	return po
}
