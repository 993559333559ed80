package scrollscene

import "github.com/pkg/errors"

// Registry maps asset names to the groups their models were loaded into.
type Registry struct {
	groups map[string]Group
	names  []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{groups: map[string]Group{}}
}

// Register adds a group under the given name. Each name can be registered only once.
func (reg *Registry) Register(name string, group Group) error {
	if _, exists := reg.groups[name]; exists {
		return errors.Wrapf(ErrAlreadyRegistered, "model %q", name)
	}
	reg.groups[name] = group
	reg.names = append(reg.names, name)
	return nil
}

// Lookup returns the group registered under name, or an error wrapping ErrNotFound.
func (reg *Registry) Lookup(name string) (Group, error) {
	if reg != nil {
		if group, ok := reg.groups[name]; ok {
			return group, nil
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "model %q", name)
}

// Names returns the registered names in registration order.
func (reg *Registry) Names() []string {
	if reg == nil {
		return nil
	}
	return append([]string(nil), reg.names...)
}

// Len returns the number of registered groups.
func (reg *Registry) Len() int {
	if reg == nil {
		return 0
	}
	return len(reg.groups)
}
