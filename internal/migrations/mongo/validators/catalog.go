package validators

import "go.mongodb.org/mongo-driver/bson"

var (
	nullableString = bson.M{"bsonType": bson.A{"string", "null"}}
	nullablePrice  = bson.M{"bsonType": bson.A{"double", "int", "long", "null"}, "minimum": 0}
)

func imageSlots(names ...string) bson.M {
	props := bson.M{}
	for _, n := range names {
		props[n] = nullableString
	}
	return props
}

func merge(parts ...bson.M) bson.M {
	out := bson.M{}
	for _, p := range parts {
		for k, v := range p {
			out[k] = v
		}
	}
	return out
}

var TourValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"nombre", "created_at"},
		"additionalProperties": true,
		"properties": merge(
			bson.M{
				"_id":                bson.M{"bsonType": "objectId"},
				"nombre":             bson.M{"bsonType": "string", "minLength": 2, "maxLength": 120},
				"descripcion":        bson.M{"bsonType": "string", "maxLength": 5000},
				"precio_por_persona": nullablePrice,
				"price":              nullablePrice,
				"duracion":           bson.M{"bsonType": "string", "maxLength": 60},
				"incluye":            nullableString,
				"categoria":          bson.M{"bsonType": "string", "maxLength": 40},
				"max_personas":       bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0, "maximum": 200},
				"created_at":         bson.M{"bsonType": "date"},
			},
			imageSlots("imagen1", "imagen2", "imagen3", "imagen4", "imagen5",
				"imagen6", "imagen7", "imagen8", "imagen9", "imagen10"),
		),
	},
}

var GalleryValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"titulo", "created_at"},
		"additionalProperties": true,
		"properties": merge(
			bson.M{
				"_id":         bson.M{"bsonType": "objectId"},
				"titulo":      bson.M{"bsonType": "string", "minLength": 2, "maxLength": 120},
				"descripcion": bson.M{"bsonType": "string", "maxLength": 2000},
				"categoria":   bson.M{"bsonType": "string", "maxLength": 40},
				"created_at":  bson.M{"bsonType": "date"},
			},
			imageSlots("imagen_portada", "imagen2", "imagen3", "imagen4", "imagen5"),
		),
	},
}

var VideoValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"title", "active", "created_at"},
		"additionalProperties": true,
		"properties": bson.M{
			"_id":           bson.M{"bsonType": "objectId"},
			"title":         bson.M{"bsonType": "string", "minLength": 2, "maxLength": 120},
			"description":   bson.M{"bsonType": "string", "maxLength": 2000},
			"video_url":     nullableString,
			"thumbnail_url": nullableString,
			"active":        bson.M{"bsonType": "bool"},
			"sort_order":    bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
			"created_at":    bson.M{"bsonType": "date"},
		},
	},
}

var MeetingPointValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"title"},
		"additionalProperties": true,
		"properties": bson.M{
			"_id":          bson.M{"bsonType": "objectId"},
			"title":        bson.M{"bsonType": "string", "minLength": 2, "maxLength": 120},
			"zone":         bson.M{"bsonType": "string", "maxLength": 80},
			"instructions": bson.M{"bsonType": "string", "maxLength": 2000},
			"map_url":      bson.M{"bsonType": "string"},
			"active":       bson.M{"bsonType": "bool"},
		},
	},
}
