// /internal/versions/descriptor.go

// Package versions reads the version descriptors under versions/ and
// resolves inheritsFrom chains into a single launchable descriptor.
package versions

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// ErrNotInstalled means versions/<id>/<id>.json does not exist.
var ErrNotInstalled = errors.New("version is not installed")

// maxInheritDepth bounds inheritsFrom chains so a cycle cannot loop forever.
const maxInheritDepth = 8

type Descriptor struct {
	ID                 string      `json:"id"`
	InheritsFrom       string      `json:"inheritsFrom,omitempty"`
	Type               string      `json:"type,omitempty"`
	MainClass          string      `json:"mainClass,omitempty"`
	Jar                string      `json:"jar,omitempty"`
	Assets             string      `json:"assets,omitempty"`
	AssetIndex         *AssetIndex `json:"assetIndex,omitempty"`
	Libraries          []Library   `json:"libraries,omitempty"`
	Arguments          *Arguments  `json:"arguments,omitempty"`
	MinecraftArguments string      `json:"minecraftArguments,omitempty"`

	// Ancestors lists the ids merged in by Load, nearest parent first.
	Ancestors []string `json:"-"`
}

type AssetIndex struct {
	ID  string `json:"id"`
	URL string `json:"url,omitempty"`
}

type Arguments struct {
	Game []Argument `json:"game,omitempty"`
	JVM  []Argument `json:"jvm,omitempty"`
}

// Argument is either a plain string or a rule-guarded group of values.
type Argument struct {
	Rules  []Rule
	Values []string
}

func (a *Argument) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		a.Values = []string{plain}
		return nil
	}

	var guarded struct {
		Rules []Rule          `json:"rules"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &guarded); err != nil {
		return fmt.Errorf("argument: %w", err)
	}
	a.Rules = guarded.Rules

	var one string
	if err := json.Unmarshal(guarded.Value, &one); err == nil {
		a.Values = []string{one}
		return nil
	}
	if err := json.Unmarshal(guarded.Value, &a.Values); err != nil {
		return fmt.Errorf("argument value: %w", err)
	}
	return nil
}

func (a Argument) MarshalJSON() ([]byte, error) {
	if len(a.Rules) == 0 && len(a.Values) == 1 {
		return json.Marshal(a.Values[0])
	}
	return json.Marshal(struct {
		Rules []Rule   `json:"rules,omitempty"`
		Value []string `json:"value"`
	}{a.Rules, a.Values})
}

type Library struct {
	Name      string            `json:"name"`
	URL       string            `json:"url,omitempty"`
	Downloads *LibraryDownloads `json:"downloads,omitempty"`
	Rules     []Rule            `json:"rules,omitempty"`
	Natives   map[string]string `json:"natives,omitempty"`
	Extract   *Extract          `json:"extract,omitempty"`
}

type LibraryDownloads struct {
	Artifact    *Artifact            `json:"artifact,omitempty"`
	Classifiers map[string]*Artifact `json:"classifiers,omitempty"`
}

type Artifact struct {
	Path string `json:"path"`
	SHA1 string `json:"sha1,omitempty"`
	Size int64  `json:"size,omitempty"`
	URL  string `json:"url,omitempty"`
}

type Extract struct {
	Exclude []string `json:"exclude,omitempty"`
}

// DescriptorPath is <versionsDir>/<id>/<id>.json.
func DescriptorPath(versionsDir, id string) string {
	return filepath.Join(versionsDir, id, id+".json")
}

// Read decodes a single descriptor without following inheritsFrom.
func Read(versionsDir, id string) (*Descriptor, error) {
	path := DescriptorPath(versionsDir, id)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", id, ErrNotInstalled)
	}
	if err != nil {
		return nil, err
	}
	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if d.ID == "" {
		d.ID = id
	}
	return &d, nil
}

// Load reads id and folds every ancestor named by inheritsFrom into it.
func Load(versionsDir, id string) (*Descriptor, error) {
	d, err := Read(versionsDir, id)
	if err != nil {
		return nil, err
	}
	seen := mapset.NewThreadUnsafeSet(d.ID)
	for depth := 0; d.InheritsFrom != ""; depth++ {
		if depth >= maxInheritDepth || seen.Contains(d.InheritsFrom) {
			return nil, fmt.Errorf("%s: inheritsFrom chain through %q does not terminate", id, d.InheritsFrom)
		}
		seen.Add(d.InheritsFrom)
		parent, err := Read(versionsDir, d.InheritsFrom)
		if err != nil {
			return nil, fmt.Errorf("load parent of %s: %w", d.ID, err)
		}
		d = Merge(d, parent)
	}
	return d, nil
}

// Merge folds parent into child. The result keeps the child's identity and
// scalar fields, lists child libraries first followed by parent libraries the
// child does not override, and places parent arguments before the child's.
// The returned descriptor inherits from whatever the parent inherits from.
func Merge(child, parent *Descriptor) *Descriptor {
	out := *parent
	out.ID = child.ID
	out.InheritsFrom = parent.InheritsFrom
	out.Ancestors = append(append([]string{}, child.Ancestors...), parent.ID)
	if child.Type != "" {
		out.Type = child.Type
	}
	if child.MainClass != "" {
		out.MainClass = child.MainClass
	}
	if child.Jar != "" {
		out.Jar = child.Jar
	}
	if child.Assets != "" {
		out.Assets = child.Assets
	}
	if child.AssetIndex != nil {
		out.AssetIndex = child.AssetIndex
	}
	if child.MinecraftArguments != "" {
		out.MinecraftArguments = child.MinecraftArguments
	}

	names := mapset.NewThreadUnsafeSet[string]()
	libs := make([]Library, 0, len(child.Libraries)+len(parent.Libraries))
	for _, lib := range child.Libraries {
		names.Add(lib.Key())
		libs = append(libs, lib)
	}
	for _, lib := range parent.Libraries {
		if names.Contains(lib.Key()) {
			continue
		}
		libs = append(libs, lib)
	}
	out.Libraries = libs

	if child.Arguments != nil || parent.Arguments != nil {
		args := &Arguments{}
		if parent.Arguments != nil {
			args.Game = append(args.Game, parent.Arguments.Game...)
			args.JVM = append(args.JVM, parent.Arguments.JVM...)
		}
		if child.Arguments != nil {
			args.Game = append(args.Game, child.Arguments.Game...)
			args.JVM = append(args.JVM, child.Arguments.JVM...)
		}
		out.Arguments = args
	}
	return &out
}

// AssetIndexName is the index id passed as ${assets_index_name}.
func (d *Descriptor) AssetIndexName() string {
	if d.AssetIndex != nil && d.AssetIndex.ID != "" {
		return d.AssetIndex.ID
	}
	return d.Assets
}

// JarID is the version whose client jar goes on the classpath. Without an
// explicit jar that is the version itself, even when it inherits.
func (d *Descriptor) JarID() string {
	if d.Jar != "" {
		return d.Jar
	}
	return d.ID
}

// Key identifies a library independent of its version:
// group:artifact[:classifier].
func (l Library) Key() string {
	parts := strings.Split(l.Name, ":")
	if len(parts) < 3 {
		return l.Name
	}
	key := parts[0] + ":" + parts[1]
	if len(parts) > 3 {
		key += ":" + strings.Join(parts[3:], ":")
	}
	return key
}

// MavenPath converts group:artifact:version[:classifier][@ext] into
// group/path/artifact/version/artifact-version[-classifier].ext.
func MavenPath(name string) (string, error) {
	ext := "jar"
	if i := strings.LastIndex(name, "@"); i >= 0 {
		ext = name[i+1:]
		name = name[:i]
	}
	parts := strings.Split(name, ":")
	if len(parts) < 3 {
		return "", fmt.Errorf("library name %q is not group:artifact:version", name)
	}
	group, artifact, version := parts[0], parts[1], parts[2]
	file := artifact + "-" + version
	if len(parts) > 3 {
		file += "-" + parts[3]
	}
	return filepath.Join(filepath.Join(strings.Split(group, ".")...), artifact, version, file+"."+ext), nil
}

// ArtifactPath is the jar's path relative to libraries/.
func (l Library) ArtifactPath() (string, error) {
	if l.Downloads != nil && l.Downloads.Artifact != nil && l.Downloads.Artifact.Path != "" {
		return filepath.FromSlash(l.Downloads.Artifact.Path), nil
	}
	return MavenPath(l.Name)
}

// NativePath is the path of the natives classifier jar for the given
// classifier, relative to libraries/.
func (l Library) NativePath(classifier string) (string, error) {
	if l.Downloads != nil {
		if a, ok := l.Downloads.Classifiers[classifier]; ok && a != nil && a.Path != "" {
			return filepath.FromSlash(a.Path), nil
		}
	}
	return MavenPath(l.Name + ":" + classifier)
}
