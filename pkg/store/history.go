package store

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"
	"github.com/pkg/errors"

	"tableflip.dev/datepick/pkg/format"
	"tableflip.dev/datepick/pkg/picker"
)

// DefaultName groups picks made without --name.
const DefaultName = "default"

// Config locates the history on disk.
type Config interface {
	BasePath() string
}

// History defines the persistence contract for confirmed picks.
type History interface {
	// List returns the records saved under name, oldest first. An empty
	// name lists every record.
	List(ctx context.Context, name string) []*Record
	// Last returns the newest record saved under name.
	Last(ctx context.Context, name string) (*Record, bool)
	// Names returns the distinct record names, sorted.
	Names(ctx context.Context) []string
	Save(r *Record) error
	Delete(r *Record) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Record is one confirmed pick.
type Record struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Format     string    `json:"format"`
	Date       time.Time `json:"date"`
	Formatted  string    `json:"formatted"`
	Components []string  `json:"components"`
	Created    time.Time `json:"created"`
}

// NewRecord captures a confirmed selection.
func NewRecord(name string, code format.Code, sel picker.Selection, now time.Time) *Record {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	return &Record{
		Name:       name,
		Format:     code.String(),
		Date:       sel.Date,
		Formatted:  sel.Formatted,
		Components: sel.Components.Names(),
		Created:    now,
	}
}

// Load creates a History backed by diskv under cfg's base path.
func Load(cfg Config) (History, error) {
	if cfg == nil || strings.TrimSpace(cfg.BasePath()) == "" {
		return nil, errors.New("store: base path required")
	}
	basePath := cfg.BasePath()
	return &history{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type history struct {
	d        *diskv.Diskv
	basePath string
}

func (h *history) read(key string) (*Record, error) {
	val, err := h.d.Read(key)
	if err != nil {
		return nil, err
	}
	r := &Record{}
	if err := json.Unmarshal(val, r); err != nil {
		return nil, err
	}
	r.ID = keyToPathTransform(key).FileName
	return r, nil
}

func (h *history) List(ctx context.Context, name string) []*Record {
	encoded := ""
	if name != "" {
		encoded = toName(name)
	}
	all := make([]*Record, 0)
	for key := range h.d.Keys(ctx.Done()) {
		dir, ok := nameDir(key)
		if !ok || (encoded != "" && dir != encoded) {
			continue
		}
		r, err := h.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, r)
	}
	sortRecords(all)
	return all
}

func (h *history) Last(ctx context.Context, name string) (*Record, bool) {
	all := h.List(ctx, name)
	if len(all) == 0 {
		return nil, false
	}
	return all[len(all)-1], true
}

func (h *history) Names(ctx context.Context) []string {
	seen := make(map[string]struct{})
	for key := range h.d.Keys(ctx.Done()) {
		if dir, ok := nameDir(key); ok {
			seen[fromName(dir)] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (h *history) Save(r *Record) error {
	if r == nil {
		return errors.New("store: nil record")
	}
	if r.Name == "" {
		r.Name = DefaultName
	}
	if r.Created.IsZero() {
		r.Created = time.Now()
	}
	key := toKey(r)
	data, err := json.Marshal(r)
	if err != nil {
		return errors.Wrap(err, "store: encode record")
	}
	return errors.Wrapf(h.d.Write(key, data), "store: write %s", r.ID)
}

func (h *history) Delete(r *Record) error {
	if r == nil || r.ID == "" {
		return errors.New("store: record id required")
	}
	return h.d.Erase(toKey(r))
}

func sortRecords(records []*Record) {
	sort.SliceStable(records, func(i, j int) bool {
		left, right := records[i], records[j]
		if left.Created.Equal(right.Created) {
			return left.ID < right.ID
		}
		return left.Created.Before(right.Created)
	})
}

const layoutStamp = "20060102T150405.000000000"

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

// nameDir returns the encoded name directory of key. Keys that were not
// written by Save, such as stray files in the base path, have none.
func nameDir(key string) (string, bool) {
	pk := keyToPathTransform(key)
	if len(pk.Path) == 0 || pk.Path[0] == "" {
		return "", false
	}
	return pk.Path[0], true
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `name-id`, where a generated id leads with the creation stamp
// so file listings sort by time.
func toKey(r *Record) string {
	if r.ID == "" {
		b, _ := json.Marshal(r)
		id := md5.Sum(b)
		r.ID = fmt.Sprintf("%s_%x", r.Created.UTC().Format(layoutStamp), id[:8])
	}
	return fmt.Sprintf("%s-%s", toName(r.Name), r.ID)
}

// Names are hex encoded so they are safe as a single path element.
func toName(s string) string {
	return hex.EncodeToString([]byte(s))
}

func fromName(s string) string {
	name, err := hex.DecodeString(s)
	if err != nil {
		return ""
	}
	return string(name)
}
