package profile

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/indicwp/lchar"
	"golang.org/x/text/language"
)

// Profile represents the treatment of logical characters for a language.
type Profile struct {
	Name   string        // lower case name, used as registry key
	Tag    language.Tag  // BCP 47 language tag
	Indic  bool          // written in an Indic script?
	Policy *lchar.Policy // classification policy; nil means lchar.DefaultPolicy()
}

func (p *Profile) String() string {
	return fmt.Sprintf("[profile %s (%s) indic=%v]", p.Name, p.Tag, p.Indic)
}

// DefaultName is the name of the profile unknown languages fall back to.
const DefaultName = "telugu"

var registry = struct {
	sync.RWMutex
	profiles map[string]*Profile
}{
	profiles: map[string]*Profile{},
}

func init() {
	for _, p := range []*Profile{
		{Name: "telugu", Tag: language.Telugu, Indic: true},
		{Name: "english", Tag: language.English, Indic: false},
		{Name: "hindi", Tag: language.Hindi, Indic: true},
		{Name: "malayalam", Tag: language.Malayalam, Indic: true},
		{Name: "gujarati", Tag: language.Gujarati, Indic: true},
	} {
		p.Policy = lchar.DefaultPolicy()
		registry.profiles[p.Name] = p
	}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds a profile to the registry or replaces the one with the same name.
// Profiles without a name result in an error wrapping lchar.ErrInvalidArgument.
func Register(p *Profile) error {
	if p == nil || normalizeName(p.Name) == "" {
		return fmt.Errorf("%w: profile must have a name", lchar.ErrInvalidArgument)
	}
	reg := *p
	reg.Name = normalizeName(p.Name)
	if reg.Policy == nil {
		reg.Policy = lchar.DefaultPolicy()
	}
	registry.Lock()
	defer registry.Unlock()
	registry.profiles[reg.Name] = &reg
	T().Infof("registered %s", reg.String())
	return nil
}

// Supported is true if a profile is registered for name. Case and
// surrounding white space are ignored.
func Supported(name string) bool {
	registry.RLock()
	defer registry.RUnlock()
	_, ok := registry.profiles[normalizeName(name)]
	return ok
}

// Lookup returns the profile registered for name. Unknown names fall back to
// the default profile.
func Lookup(name string) *Profile {
	registry.RLock()
	defer registry.RUnlock()
	if p, ok := registry.profiles[normalizeName(name)]; ok {
		return p
	}
	T().Debugf("no profile for language %q, using %s", name, DefaultName)
	return registry.profiles[DefaultName]
}

// Default returns the default profile.
func Default() *Profile {
	return Lookup(DefaultName)
}

// Languages returns the names of all registered profiles, sorted.
func Languages() []string {
	registry.RLock()
	defer registry.RUnlock()
	return sortedNames()
}

// Match returns the registered profile best matching a language tag.
// If no profile matches, the default profile is returned.
func Match(tag language.Tag) *Profile {
	registry.RLock()
	defer registry.RUnlock()
	// the first tag of a matcher is its fallback
	candidates := []*Profile{registry.profiles[DefaultName]}
	for _, name := range sortedNames() {
		if name != DefaultName {
			candidates = append(candidates, registry.profiles[name])
		}
	}
	tags := make([]language.Tag, len(candidates))
	for i, p := range candidates {
		tags[i] = p.Tag
	}
	_, index, confidence := language.NewMatcher(tags).Match(tag)
	if confidence == language.No {
		T().Debugf("language %v not supported, using %s", tag, DefaultName)
		return candidates[0]
	}
	return candidates[index]
}

// sortedNames expects the registry to be locked.
func sortedNames() []string {
	names := make([]string, 0, len(registry.profiles))
	for name := range registry.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromEnvironment returns the profile best matching the locale of the user.
// If the locale cannot be detected, "en-US" is assumed.
func FromEnvironment() *Profile {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		T().Errorf("cannot detect user locale: %v", err)
		userLocale = "en-US"
		T().Infof("profile sets default user locale %v", userLocale)
	} else {
		T().Infof("profile detected user locale %v", userLocale)
	}
	return Match(language.Make(userLocale))
}
