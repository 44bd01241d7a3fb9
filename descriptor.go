package polyjson

import (
	"bytes"
	"io"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Descriptor is the declarative form of a family: where its tag lives and
// which canonical tags exist. Code supplies the constructors.
type Descriptor struct {
	Name          string            `yaml:"name" validate:"required"`
	Discriminator []LocationSpec    `yaml:"discriminator" validate:"required,min=1,dive"`
	Tags          []string          `yaml:"tags" validate:"required,min=1,unique,dive,required"`
	Aliases       map[string]string `yaml:"aliases" validate:"dive,keys,required,endkeys,required"`
	Unknown       string            `yaml:"unknown" validate:"required"`
	Doc           string            `yaml:"doc"`
}

// LocationSpec is the YAML form of a Location.
type LocationSpec struct {
	Object string `yaml:"object"`
	Field  string `yaml:"field" validate:"required"`
}

// Locations converts the discriminator specs.
func (d Descriptor) Locations() []Location {
	out := make([]Location, 0, len(d.Discriminator))
	for _, s := range d.Discriminator {
		out = append(out, Location{Object: s.Object, Field: s.Field})
	}
	return out
}

// Descriptors is a set of family descriptors keyed by name.
type Descriptors map[string]Descriptor

// Get returns the descriptor for name.
func (ds Descriptors) Get(name string) (Descriptor, bool) {
	d, ok := ds[name]
	return d, ok
}

// Names returns the family names, sorted.
func (ds Descriptors) Names() []string {
	out := make([]string, 0, len(ds))
	for n := range ds {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

type descriptorFile struct {
	Families []Descriptor `yaml:"families" validate:"required,min=1,dive"`
}

var descriptorValidator = validator.New(validator.WithRequiredStructEnabled())

// LoadDescriptors reads a YAML document of the form
//
//	families:
//	  - name: item
//	    discriminator: [{field: type}]
//	    unknown: UnknownItem
//	    tags: [Armor, Weapon]
func LoadDescriptors(r io.Reader) (Descriptors, error) {
	var f descriptorFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, singleIssue("/", CodeInvalidDescriptor, "yaml", errors.Wrap(err, "decode family descriptors"))
	}
	if err := descriptorValidator.Struct(f); err != nil {
		return nil, singleIssue("/", CodeInvalidDescriptor, "validation", errors.Wrap(err, "validate family descriptors"))
	}
	out := make(Descriptors, len(f.Families))
	var iss Issues
	for i, d := range f.Families {
		if _, dup := out[d.Name]; dup {
			iss = AppendIssues(iss, newIssue(Root().Field("families").Index(i).Pointer(), CodeInvalidDescriptor, "duplicate family "+d.Name, nil))
			continue
		}
		out[d.Name] = d
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// LoadDescriptorsBytes is LoadDescriptors over a byte slice.
func LoadDescriptorsBytes(data []byte) (Descriptors, error) {
	return LoadDescriptors(bytes.NewReader(data))
}

// FromDescriptor starts a family builder from d: name, discriminator
// locations, aliases and the expected tag set. Variants and the unknown
// constructor are still added in code.
func FromDescriptor[T any](d Descriptor) *FamilyBuilder[T] {
	b := NewFamily[T](d.Name).Discriminator(d.Locations()...).Expect(d.Tags...)
	aliases := make([]string, 0, len(d.Aliases))
	for a := range d.Aliases {
		aliases = append(aliases, a)
	}
	sort.Strings(aliases)
	for _, a := range aliases {
		b.Alias(a, d.Aliases[a])
	}
	return b
}
