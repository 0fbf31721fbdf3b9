package dto

import "main/model"

func ToMessageResponses(messages []*model.Message) []*model.Message {
	if messages == nil {
		return []*model.Message{}
	}
	return messages
}
