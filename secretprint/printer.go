// Package secretprint loads the optional .env definitions file, looks up a single required
// variable and prints it with a fixed label.
package secretprint

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/unattended-backpack/clay/envx"
)

type option func(o *options)

type options struct {
	envFile  *string
	workDir  string
	fs       afero.Fs
	out      io.Writer
	logger   Logger
	env      envx.Environment
	resolver envx.Resolver
}

// WithEnvFile sets the definitions file loaded on Run. An empty path disables loading.
// By default, envx.DefaultEnvFile is searched for in the working directory and its parents.
func WithEnvFile(path string) option {
	return func(o *options) {
		o.envFile = &path
	}
}

// WithWorkDir sets the directory the definitions file search starts from. Defaults to os.Getwd
func WithWorkDir(dir string) option {
	return func(o *options) {
		if dir != "" {
			o.workDir = dir
		}
	}
}

// WithFs sets the filesystem the definitions file is read from. The OS filesystem is used by default
func WithFs(fs afero.Fs) option {
	return func(o *options) {
		if fs != nil {
			o.fs = fs
		}
	}
}

// WithOutput sets the writer the secret line goes to. Defaults to os.Stdout
func WithOutput(w io.Writer) option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

// WithLogger allows to set logger. If not specified, NoopLogger is used
func WithLogger(logger Logger) option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithEnvironment sets the environment the definitions file is merged into.
// The process environment is used by default.
func WithEnvironment(env envx.Environment) option {
	return func(o *options) {
		if env != nil {
			o.env = env
		}
	}
}

// WithResolver sets the resolver the variable is looked up with.
// By default, only the environment set with WithEnvironment is consulted.
func WithResolver(r envx.Resolver) option {
	return func(o *options) {
		if r != nil {
			o.resolver = r
		}
	}
}

// Printer prints the value of one required variable.
type Printer struct {
	instance Instance
	envFile  *string
	workDir  string
	fs       afero.Fs
	out      io.Writer
	logger   Logger
	env      envx.Environment
	resolver envx.Resolver
}

// New builds a Printer for the given instance
func New(instance Instance, opts ...option) *Printer {
	o := options{
		workDir: ".",
		fs:      afero.NewOsFs(),
		out:     os.Stdout,
		logger:  NewNoopLogger(),
		env:     envx.EnvSource{},
	}

	if wd, err := os.Getwd(); err == nil {
		o.workDir = wd
	}

	for _, opt := range opts {
		opt(&o)
	}
	if o.resolver == nil {
		o.resolver = envx.NewResolver(o.env)
	}

	return &Printer{
		instance: instance,
		envFile:  o.envFile,
		workDir:  o.workDir,
		fs:       o.fs,
		out:      o.out,
		logger:   o.logger,
		env:      o.env,
		resolver: o.resolver,
	}
}

// Run loads the definitions file, then writes "<Label>: <value>" followed by a newline.
// A missing variable yields an envx.Error wrapping envx.ErrRequired and nothing is written.
func (p *Printer) Run() error {
	p.loadEnvFile()

	value, err := p.lookup()
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintf(p.out, "%s: %s\n", p.instance.Label, value); err != nil {
		return fmt.Errorf("cannot write %s: %w", p.instance.Name, err)
	}
	return nil
}

// loadEnvFile never fails, the definitions file is optional.
func (p *Printer) loadEnvFile() {
	path, err := p.envFilePath()
	if err != nil {
		p.logger.Debug("env file is not found", "error", err.Error())
		return
	}
	if path == "" {
		return
	}
	written, err := envx.LoadFile(p.fs, path, p.env)
	if err != nil {
		p.logger.Debug("env file is not fully loaded", "path", path, "variables", written, "error", err.Error())
		return
	}
	p.logger.Debug("env file is loaded", "path", path, "variables", written)
}

func (p *Printer) envFilePath() (string, error) {
	if p.envFile != nil {
		return *p.envFile, nil
	}
	return envx.FindEnvFile(p.fs, p.workDir)
}

func (p *Printer) lookup() (string, error) {
	v, err := p.resolver.Get(p.instance.Name)
	if err != nil {
		return "", err
	}
	return v.Required().String()
}
