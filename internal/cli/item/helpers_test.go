package item

import boardservice "github.com/thenoetrevino/lanekit/internal/services/board"

func updateDescription(key, desc string) boardservice.UpdateItemRequest {
	return boardservice.UpdateItemRequest{Key: key, Description: &desc}
}
