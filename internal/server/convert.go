package server

import (
	"gift_registry/internal/domain/entity"
	"gift_registry/pkg/lox"
	"gift_registry/pkg/rest"
)

func newRESTGift(gift entity.Gift) rest.Gift {
	return rest.Gift{
		ID:       gift.ID,
		Name:     gift.Name,
		Details:  gift.Details,
		Link:     gift.Link,
		Image:    gift.Image,
		Grade:    gift.Grade.String(),
		Reserved: gift.Reserved,
	}
}

func newRESTCatalog(catalog entity.Catalog) rest.Catalog {
	return rest.Catalog{
		Gifts:         lox.Map(catalog.Gifts, newRESTGift),
		PlaceInfo:     catalog.PlaceInfo,
		DressCodeInfo: catalog.DressCodeInfo,
	}
}
