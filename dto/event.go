package dto

import "main/model"

func ToEventResponses(events []*model.Event) []*model.Event {
	if events == nil {
		return []*model.Event{}
	}
	return events
}
