package view

import "VCS_Image_Dashboard/internal/dashboard/model"

type Badge struct {
	Label string
	Class string
	Icon  string
}

var statusBadges = map[model.Status]Badge{
	model.StatusRunning: {Label: "Running", Class: "badge-green", Icon: "●"},
	model.StatusStopped: {Label: "Stopped", Class: "badge-gray", Icon: "■"},
	model.StatusError:   {Label: "Error", Class: "badge-red", Icon: "✕"},
	model.StatusUnknown: {Label: "Unknown", Class: "badge-yellow", Icon: "?"},
}

var categoryBadges = map[model.Category]Badge{
	model.CategoryDevelopment: {Label: "Development", Class: "badge-blue"},
	model.CategoryTesting:     {Label: "Testing", Class: "badge-purple"},
	model.CategoryStaging:     {Label: "Staging", Class: "badge-teal"},
	model.CategoryProduction:  {Label: "Production", Class: "badge-orange"},
	model.CategoryUnknown:     {Label: "Unknown", Class: "badge-gray"},
}

func StatusBadge(s model.ServerRecord) Badge {
	return statusBadges[s.NormalizedStatus()]
}

func CategoryBadge(s model.ServerRecord) Badge {
	return categoryBadges[s.NormalizedCategory()]
}

type Option struct {
	Value    string
	Label    string
	Selected bool
}

func statusOptions(selected string) []Option {
	res := []Option{{Value: model.FilterAll, Label: "All statuses", Selected: selected == model.FilterAll}}
	for _, s := range model.Statuses {
		res = append(res, Option{Value: string(s), Label: statusBadges[s].Label, Selected: selected == string(s)})
	}
	return res
}

func categoryOptions(selected string) []Option {
	res := []Option{{Value: model.FilterAll, Label: "All categories", Selected: selected == model.FilterAll}}
	for _, c := range model.Categories {
		res = append(res, Option{Value: string(c), Label: categoryBadges[c].Label + " servers", Selected: selected == string(c)})
	}
	return res
}
