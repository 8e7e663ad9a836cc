package config

import (
	"sort"

	"github.com/san-kum/cosmic/internal/cosmo"
)

type Preset struct {
	cosmo.Params
	Description string
}

var Presets = map[string]Preset{
	"planck2013": {
		Params:      cosmo.Params{H0: 67.04, OmegaM: 0.3183, OmegaL: 0.6817},
		Description: "Planck 2013 + WMAP polarization",
	},
	"planck2018": {
		Params:      cosmo.Params{H0: 67.66, OmegaM: 0.3111, OmegaL: 0.6889},
		Description: "Planck 2018 TT,TE,EE+lowE+lensing+BAO",
	},
	"wmap9": {
		Params:      cosmo.Params{H0: 69.32, OmegaM: 0.2865, OmegaL: 0.7135},
		Description: "WMAP nine-year + eCMB + BAO + H0",
	},
	"concordance": {
		Params:      cosmo.Params{H0: 71, OmegaM: 0.27, OmegaL: 0.73},
		Description: "flat concordance model",
	},
	"eds": {
		Params:      cosmo.Params{H0: 70, OmegaM: 1, OmegaL: 0},
		Description: "Einstein-de Sitter, matter only",
	},
	"open": {
		Params:      cosmo.Params{H0: 70, OmegaM: 0.3, OmegaL: 0},
		Description: "open, no vacuum energy",
	},
	"closed": {
		Params:      cosmo.Params{H0: 70, OmegaM: 2, OmegaL: 0},
		Description: "closed, matter dominated",
	},
	"milne": {
		Params:      cosmo.Params{H0: 70, OmegaM: 0, OmegaL: 0},
		Description: "empty universe",
	},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
