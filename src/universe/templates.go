package universe

import "sort"

//Template represent the seeding template which can used to settle the universe with predefined data
type Template struct {
	Name        string  //template name
	Descr       string  //template descr
	Coordinates [][]int //array of [x,y] coordinates
}

var templates = map[string]Template{}

func init() {
	AddTemplate(Template{"block", "2x2 still life", [][]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}}})
	AddTemplate(Template{"blinker", "period 2 oscillator", [][]int{{2, 1}, {2, 2}, {2, 3}}})
	AddTemplate(Template{"glider", "moves one cell diagonally every 4 steps", [][]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}})
	AddTemplate(Template{"sample", "the test sample with 3 stable patterns", [][]int{
		{1, 1}, {1, 2},
		{2, 1}, {2, 2},
		{3, 3},
		{4, 2},
		{4, 3},
		{5, 3},
	}})
}

//AddTemplate adds the seeding template to the registry
//Options.Template refers to templates by name
func AddTemplate(tmpl Template) {
	if tmpl.Name == "" {
		return
	}
	templates[tmpl.Name] = tmpl
}

//LookupTemplate returns the registered template
func LookupTemplate(name string) (Template, bool) {
	tmpl, ok := templates[name]
	return tmpl, ok
}

//TemplateNames returns the sorted names of all registered templates
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for k := range templates {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
