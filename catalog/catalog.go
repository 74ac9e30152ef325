// Package catalog loads the Pokémon image catalog from the Data/ and Images/
// folders and resolves selections by name, numeric id or at random.
package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"poketerm/config"
	"poketerm/util/log"
)

// ErrNotFound is returned when a requested name or id is not in the catalog.
var ErrNotFound = errors.New("catalog: no such entry")

// Entry is one themed image in the catalog.
type Entry struct {
	ID            string // zero-padded numeric id, empty for extras
	Name          string // lower case
	Region        string // kanto, johto, ... or empty
	Path          string // path to the image file, empty if missing on disk
	Type1         string
	Type2         string
	DarkThreshold float64
}

// DisplayName returns the entry name with the first letter capitalized.
func (e *Entry) DisplayName() string {
	if e.Name == "" {
		return ""
	}
	return strings.ToUpper(e.Name[:1]) + e.Name[1:]
}

// Label returns the id for display, or "XX" for extras without one.
func (e *Entry) Label() string {
	if e.ID == "" {
		return "XX"
	}
	return e.ID
}

// Catalog holds all entries loaded from a base directory.
type Catalog struct {
	entries []*Entry
	byName  map[string]*Entry
}

// Load reads Data/pokemon.txt under baseDir and registers one entry per line,
// then adds every .jpg from Images/Extra. The data file is required; missing
// image files only leave the entry without a path.
func Load(baseDir string) (*Catalog, error) {
	dataFile := filepath.Join(baseDir, config.DataSubDir, config.CatalogFile)
	f, err := os.Open(dataFile)
	if err != nil {
		return nil, fmt.Errorf("opening catalog data file: %w", err)
	}
	defer f.Close()

	c := &Catalog{byName: make(map[string]*Entry)}

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 3 {
			return nil, fmt.Errorf("catalog: malformed line %d in %s", lineNo, dataFile)
		}

		threshold, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("catalog: bad threshold on line %d in %s: %w", lineNo, dataFile, err)
		}

		e := &Entry{
			ID:            fmt.Sprintf("%03d", lineNo),
			Name:          strings.ToLower(fields[0]),
			Region:        regionFor(lineNo),
			Type1:         fields[2],
			DarkThreshold: threshold,
		}
		if len(fields) > 3 {
			e.Type2 = fields[3]
		}

		img := filepath.Join(generationDir(baseDir, e.Region), e.ID+".jpg")
		if e.Region != "" && fileExists(img) {
			e.Path = img
		}
		c.register(e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading catalog data file: %w", err)
	}

	c.loadExtras(baseDir)
	return c, nil
}

// loadExtras registers every .jpg under Images/Extra. Region, types and
// threshold are inherited from the base entry named by the stem before the
// first dash (e.g. "pikachu-surf" inherits from "pikachu").
func (c *Catalog) loadExtras(baseDir string) {
	extraDir := filepath.Join(baseDir, config.ImagesSubDir, "Extra")
	files, err := os.ReadDir(extraDir)
	if err != nil {
		log.Debugf("no extras directory at %s: %v", extraDir, err)
		return
	}

	for _, f := range files {
		if f.IsDir() || !strings.EqualFold(filepath.Ext(f.Name()), ".jpg") {
			continue
		}
		name := strings.ToLower(strings.TrimSuffix(f.Name(), filepath.Ext(f.Name())))

		e := &Entry{
			Name:          name,
			Path:          filepath.Join(extraDir, f.Name()),
			DarkThreshold: 0.5,
		}
		if parent, ok := c.byName[strings.SplitN(name, "-", 2)[0]]; ok {
			e.Region = parent.Region
			e.Type1 = parent.Type1
			e.Type2 = parent.Type2
			e.DarkThreshold = parent.DarkThreshold
		}
		c.register(e)
	}
}

func (c *Catalog) register(e *Entry) {
	c.entries = append(c.entries, e)
	c.byName[e.Name] = e
}

// Get resolves a selection by name (case-insensitive) or numeric id.
func (c *Catalog) Get(key string) (*Entry, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	if k == "" {
		return nil, fmt.Errorf("%w: empty selection", ErrNotFound)
	}

	if isDigits(k) {
		n, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		target := fmt.Sprintf("%03d", n)
		for _, e := range c.entries {
			if e.ID == target {
				return e, nil
			}
		}
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	if e, ok := c.byName[k]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
}

// Random returns a random entry, or nil for an empty catalog.
func (c *Catalog) Random() *Entry {
	if len(c.entries) == 0 {
		return nil
	}
	return c.entries[rand.Intn(len(c.entries))]
}

// Names returns all entry names, capitalized and sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		names = append(names, e.DisplayName())
	}
	sort.Strings(names)
	return names
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

func regionFor(id int) string {
	switch {
	case id < 152:
		return "kanto"
	case id < 252:
		return "johto"
	case id < 387:
		return "hoenn"
	case id < 494:
		return "sinnoh"
	case id < 650:
		return "unova"
	case id < 720:
		return "kalos"
	default:
		return ""
	}
}

var generationSuffixes = map[string]string{
	"kanto":  "I - Kanto",
	"johto":  "II - Johto",
	"hoenn":  "III - Hoenn",
	"sinnoh": "IV - Sinnoh",
	"unova":  "V - Unova",
	"kalos":  "VI - Kalos",
}

func generationDir(baseDir, region string) string {
	suffix, ok := generationSuffixes[region]
	if !ok {
		return ""
	}
	return filepath.Join(baseDir, config.ImagesSubDir, "Generation "+suffix)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
