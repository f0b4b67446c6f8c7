package fonts

import (
	"io/fs"
	"path/filepath"
	"strings"

	"textplay/internal/logger"
	"textplay/internal/models"

	"fyne.io/fyne/v2"
)

const component = "FontResolver"

var fontExtensions = map[string]bool{".ttf": true, ".otf": true}

// file base names, normalised, that count as a match for each family
var aliases = map[models.FontStyle][]string{
	models.Courier:    {"courier", "couriernew", "courierprime"},
	models.Helvetica:  {"helvetica", "helveticaneue"},
	models.TimesRoman: {"timesroman", "timesnewroman", "times"},
	models.Zapfino:    {"zapfino"},
	models.Geneva:     {"geneva"},
	models.Arial:      {"arial"},
	models.Futura:     {"futura"},
}

// used when no font file is found for a family
var fallbackStyles = map[models.FontStyle]fyne.TextStyle{
	models.Courier: {Monospace: true},
	models.Zapfino: {Italic: true},
}

// Face is what a canvas.Text needs to render a family
type Face struct {
	Source fyne.Resource // nil when the theme font is used
	Style  fyne.TextStyle
}

// Resolver finds font files for families in a set of directories. Lookups are cached.
type Resolver struct {
	dirs   []string
	logger logger.Logger
	cache  map[models.FontStyle]Face
}

func NewResolver(dirs []string, log logger.Logger) *Resolver {
	if log == nil {
		log = logger.NewNop()
	}
	return &Resolver{
		dirs:   dirs,
		logger: log,
		cache:  make(map[models.FontStyle]Face),
	}
}

func (r *Resolver) Resolve(style models.FontStyle) Face {
	if face, ok := r.cache[style]; ok {
		return face
	}

	face := Face{Style: fallbackStyles[style]}
	if path := r.find(style); path != "" {
		res, err := fyne.LoadResourceFromPath(path)
		if err != nil {
			r.logger.Warning(component, "font file unreadable", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
		} else {
			face = Face{Source: res}
			r.logger.Debug(component, "font resolved", map[string]interface{}{
				"style": string(style),
				"path":  path,
			})
		}
	}

	r.cache[style] = face
	return face
}

func (r *Resolver) find(style models.FontStyle) string {
	wanted := aliases[style]
	if len(wanted) == 0 {
		return ""
	}

	for _, dir := range r.dirs {
		found := ""
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() || !fontExtensions[strings.ToLower(filepath.Ext(path))] {
				return nil
			}
			base := normalise(strings.TrimSuffix(d.Name(), filepath.Ext(d.Name())))
			for _, alias := range wanted {
				if base == alias {
					found = path
					return fs.SkipAll
				}
			}
			return nil
		})
		if err != nil {
			r.logger.Debug(component, "font dir scan failed", map[string]interface{}{
				"dir":   dir,
				"error": err.Error(),
			})
		}
		if found != "" {
			return found
		}
	}
	return ""
}

func normalise(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(name))
}
