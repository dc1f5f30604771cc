// /internal/versions/list.go
package versions

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/tidwall/gjson"
)

// Installed describes one folder under versions/.
type Installed struct {
	Folder string
	ID     string // id field from the descriptor, empty when unreadable
	Parent string // inheritsFrom
	Err    error  // why the descriptor could not be used
}

var errNoDescriptor = errors.New("no descriptor json in folder")

// List scans versionsDir and reports every version folder with the id its
// descriptor declares. A missing versionsDir is an empty list.
func List(versionsDir string) ([]Installed, error) {
	entries, err := os.ReadDir(versionsDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var out []Installed
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		item := Installed{Folder: entry.Name()}
		data, err := os.ReadFile(filepath.Join(versionsDir, entry.Name(), entry.Name()+".json"))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			item.Err = errNoDescriptor
		case err != nil:
			item.Err = err
		case !gjson.ValidBytes(data):
			item.Err = errors.New("descriptor is not valid json")
		default:
			item.ID = gjson.GetBytes(data, "id").String()
			item.Parent = gjson.GetBytes(data, "inheritsFrom").String()
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Folder < out[j].Folder })
	return out, nil
}
