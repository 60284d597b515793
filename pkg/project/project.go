// Package project provides JSON import for tray projects and TOML parsing
// for per-category layout configuration.
//
// # Project Format
//
// A project file lists trays and the cables routed over them:
//
//	{
//	  "name": "Plant A",
//	  "trays": [
//	    {"name": "T-100", "width": 400, "height": 300, "rung_height": 15}
//	  ],
//	  "cables": [
//	    {"tray": "T-100", "tag": "P1", "diameter": 20, "purpose": "power feed",
//	     "category": "power", "from": "MCC-1", "to": "PUMP-1"}
//	  ]
//	}
//
// Tray and cable IDs are optional; missing IDs are assigned on load so
// later stages can address entries stably.
package project

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/MrToKa/traylay/pkg/errors"
	"github.com/MrToKa/traylay/pkg/tray"
)

// Project is a named collection of trays and their cables.
type Project struct {
	ID    string
	Name  string
	Trays []tray.Tray

	cablesByTray map[string][]*tray.Cable
}

// file-level records; kept separate from the domain types so the wire
// format can evolve without touching them.
type projectFile struct {
	ID     string        `json:"id,omitempty"`
	Name   string        `json:"name"`
	Trays  []tray.Tray   `json:"trays"`
	Cables []cableRecord `json:"cables"`
}

type cableRecord struct {
	ID       string  `json:"id,omitempty"`
	Tray     string  `json:"tray"`
	Tag      string  `json:"tag"`
	Diameter float64 `json:"diameter"`
	Purpose  string  `json:"purpose,omitempty"`
	Category string  `json:"category"`
	From     string  `json:"from,omitempty"`
	To       string  `json:"to,omitempty"`
}

// Load reads and validates a project from a JSON file.
func Load(path string) (*Project, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "project file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidProject, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}

// Read decodes and validates a project from r.
func Read(r io.Reader) (*Project, error) {
	var pf projectFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&pf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidProject, err, "decode project")
	}
	return build(pf)
}

func build(pf projectFile) (*Project, error) {
	p := &Project{
		ID:           pf.ID,
		Name:         pf.Name,
		Trays:        pf.Trays,
		cablesByTray: make(map[string][]*tray.Cable),
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	seen := make(map[string]bool, len(p.Trays))
	for i := range p.Trays {
		t := &p.Trays[i]
		if err := errors.ValidateTrayName(t.Name); err != nil {
			return nil, err
		}
		if seen[t.Name] {
			return nil, errors.New(errors.ErrCodeInvalidProject, "duplicate tray name %q", t.Name)
		}
		seen[t.Name] = true
		if t.Width < 0 || t.Height < 0 || t.RungHeight < 0 {
			return nil, errors.New(errors.ErrCodeInvalidDimensions,
				"tray %q has negative dimensions", t.Name)
		}
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		p.cablesByTray[t.Name] = nil
	}

	for i, rec := range pf.Cables {
		c, err := buildCable(rec, i)
		if err != nil {
			return nil, err
		}
		if !seen[rec.Tray] {
			return nil, errors.New(errors.ErrCodeTrayNotFound,
				"cable %q references unknown tray %q", rec.Tag, rec.Tray)
		}
		p.cablesByTray[rec.Tray] = append(p.cablesByTray[rec.Tray], c)
	}

	return p, nil
}

func buildCable(rec cableRecord, idx int) (*tray.Cable, error) {
	if err := errors.ValidateCableTag(rec.Tag); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "cable %d", idx)
	}
	if rec.Diameter < tray.MinDiameter {
		return nil, errors.New(errors.ErrCodeInvalidDiameter,
			"cable %q diameter %.2f below minimum %.1f mm", rec.Tag, rec.Diameter, tray.MinDiameter)
	}
	cat, err := tray.ParseCategory(rec.Category)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCategory, err, "cable %q", rec.Tag)
	}

	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}
	return &tray.Cable{
		ID:           id,
		Tag:          rec.Tag,
		Diameter:     rec.Diameter,
		Purpose:      rec.Purpose,
		Category:     cat,
		FromLocation: rec.From,
		ToLocation:   rec.To,
	}, nil
}

// Tray returns the tray with the given name.
func (p *Project) Tray(name string) (tray.Tray, bool) {
	for _, t := range p.Trays {
		if t.Name == name {
			return t, true
		}
	}
	return tray.Tray{}, false
}

// Cables returns the cables routed over the named tray, in file order.
func (p *Project) Cables(trayName string) []*tray.Cable {
	return p.cablesByTray[trayName]
}

// AllCables returns every cable in the project, tray by tray in
// declaration order.
func (p *Project) AllCables() []*tray.Cable {
	var all []*tray.Cable
	for _, t := range p.Trays {
		all = append(all, p.cablesByTray[t.Name]...)
	}
	return all
}

// CableCount returns the total number of cables in the project.
func (p *Project) CableCount() int {
	n := 0
	for _, cables := range p.cablesByTray {
		n += len(cables)
	}
	return n
}

// String summarizes the project for logs.
func (p *Project) String() string {
	return fmt.Sprintf("%s (%d trays, %d cables)", p.Name, len(p.Trays), p.CableCount())
}
