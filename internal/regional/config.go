package regional

import "fmt"

// SubRegion is one area of a state's regional page
type SubRegion struct {
	Title    string   `yaml:"title" json:"title"`
	Keywords []string `yaml:"keywords" json:"-"`
}

// StateConfig describes how a state's events are grouped into sub-regions
type StateConfig struct {
	Enabled    bool                 `yaml:"enabled"`
	Title      string               `yaml:"title"`
	SubRegions map[string]SubRegion `yaml:"sub_regions"`
	// DefaultRegion receives state and national events that match no keyword
	DefaultRegion string   `yaml:"default_region"`
	RegionOrder   []string `yaml:"region_order"`
}

// Validate checks that the default region and the region order refer to defined sub-regions
func (c StateConfig) Validate() error {
	if len(c.SubRegions) == 0 {
		return fmt.Errorf("no sub-regions defined")
	}
	if c.DefaultRegion != "" {
		if _, ok := c.SubRegions[c.DefaultRegion]; !ok {
			return fmt.Errorf("default region %q is not a sub-region", c.DefaultRegion)
		}
	}
	for _, key := range c.RegionOrder {
		if _, ok := c.SubRegions[key]; !ok {
			return fmt.Errorf("region order entry %q is not a sub-region", key)
		}
	}
	return nil
}

func nationals() SubRegion {
	return SubRegion{Title: "Nationals", Keywords: []string{"national", "nationals"}}
}

// DefaultStates returns the built-in regional page configuration, keyed by upper-case state code
func DefaultStates() map[string]StateConfig {
	return map[string]StateConfig{
		"QLD": {
			Enabled: true,
			Title:   "RCJQ – Queensland Regional Calendar",
			SubRegions: map[string]SubRegion{
				"seq":       {Title: "South East QLD", Keywords: []string{"brisbane", "redland", "gold coast", "sunshine coast", "ipswich", "logan", "moreton", "springfield", "ormiston"}},
				"wide-bay":  {Title: "Wide Bay & Central", Keywords: []string{"bundaberg", "gladstone", "rockhampton", "mackay", "hervey bay", "maryborough"}},
				"downs":     {Title: "Darling Downs", Keywords: []string{"darling downs", "toowoomba", "warwick", "stanthorpe"}},
				"fnq":       {Title: "Far North QLD", Keywords: []string{"cairns", "fnq", "townsville", "far north"}},
				"nationals": nationals(),
			},
			DefaultRegion: "seq",
			RegionOrder:   []string{"seq", "wide-bay", "downs", "fnq", "nationals"},
		},
		"VIC": {
			Enabled: true,
			Title:   "RCJV – Victoria Regional Calendar",
			SubRegions: map[string]SubRegion{
				"metro":     {Title: "Melbourne Metro", Keywords: []string{"melbourne", "metro", "city", "collingwood", "footscray", "richmond", "carlton"}},
				"regional":  {Title: "Regional Victoria", Keywords: []string{"geelong", "ballarat", "bendigo", "shepparton", "warrnambool", "gippsland"}},
				"nationals": nationals(),
			},
			DefaultRegion: "metro",
			RegionOrder:   []string{"metro", "regional", "nationals"},
		},
		"NSW": {
			Enabled: true,
			Title:   "RCJNSW – New South Wales Regional Calendar",
			SubRegions: map[string]SubRegion{
				"sydney":    {Title: "Greater Sydney", Keywords: []string{"sydney", "parramatta", "penrith", "liverpool", "campbelltown", "blacktown"}},
				"hunter":    {Title: "Hunter & Newcastle", Keywords: []string{"newcastle", "hunter", "maitland", "port stephens"}},
				"illawarra": {Title: "Illawarra & South Coast", Keywords: []string{"wollongong", "illawarra", "shellharbour", "nowra", "south coast"}},
				"regional":  {Title: "Regional NSW", Keywords: []string{"dubbo", "wagga", "albury", "tamworth", "orange", "bathurst", "central west"}},
				"nationals": nationals(),
			},
			DefaultRegion: "sydney",
			RegionOrder:   []string{"sydney", "hunter", "illawarra", "regional", "nationals"},
		},
		"SA": {
			Enabled: true,
			Title:   "RCJSA – South Australia Regional Calendar",
			SubRegions: map[string]SubRegion{
				"metro":     {Title: "Adelaide Metro", Keywords: []string{"adelaide", "metro", "city", "port adelaide", "glenelg", "modbury"}},
				"regional":  {Title: "Regional SA", Keywords: []string{"regional", "mount gambier", "port lincoln", "whyalla", "murray bridge"}},
				"nationals": nationals(),
			},
			DefaultRegion: "metro",
			RegionOrder:   []string{"metro", "regional", "nationals"},
		},
		"WA": {
			Enabled: true,
			Title:   "RCJWA – Western Australia Regional Calendar",
			SubRegions: map[string]SubRegion{
				"perth":     {Title: "Perth Metro", Keywords: []string{"perth", "metro", "fremantle", "joondalup", "rockingham", "mandurah"}},
				"regional":  {Title: "Regional WA", Keywords: []string{"regional", "bunbury", "albany", "geraldton", "kalgoorlie", "broome"}},
				"nationals": nationals(),
			},
			DefaultRegion: "perth",
			RegionOrder:   []string{"perth", "regional", "nationals"},
		},
		"ACT": {
			Enabled: true,
			Title:   "RCJACT – Australian Capital Territory Regional Calendar",
			SubRegions: map[string]SubRegion{
				"canberra":  {Title: "Canberra & ACT", Keywords: []string{"canberra", "act", "belconnen", "tuggeranong", "woden", "gungahlin"}},
				"nationals": nationals(),
			},
			DefaultRegion: "canberra",
			RegionOrder:   []string{"canberra", "nationals"},
		},
		"NT": {
			Enabled: true,
			Title:   "RCJNT – Northern Territory Regional Calendar",
			SubRegions: map[string]SubRegion{
				"darwin":    {Title: "Darwin & NT", Keywords: []string{"darwin", "palmerston", "alice springs", "katherine", "northern territory"}},
				"nationals": nationals(),
			},
			DefaultRegion: "darwin",
			RegionOrder:   []string{"darwin", "nationals"},
		},
		"NZ": {
			Enabled: true,
			Title:   "RCJNZ – New Zealand Regional Calendar",
			SubRegions: map[string]SubRegion{
				"north-island": {Title: "North Island", Keywords: []string{"auckland", "wellington", "hamilton", "tauranga", "palmerston north", "napier", "hastings", "rotorua", "whangarei"}},
				"south-island": {Title: "South Island", Keywords: []string{"christchurch", "dunedin", "invercargill", "nelson", "queenstown", "timaru"}},
				"nationals":    nationals(),
			},
			DefaultRegion: "north-island",
			RegionOrder:   []string{"north-island", "south-island", "nationals"},
		},
		"TAS": {
			Enabled: true,
			Title:   "RCJTAS – Tasmania Regional Calendar",
			SubRegions: map[string]SubRegion{
				"hobart":    {Title: "Hobart & South", Keywords: []string{"hobart", "kingston", "huonville", "sorell"}},
				"regional":  {Title: "Regional Tasmania", Keywords: []string{"launceston", "devonport", "burnie", "north", "northwest"}},
				"nationals": nationals(),
			},
			DefaultRegion: "hobart",
			RegionOrder:   []string{"hobart", "regional", "nationals"},
		},
	}
}
