package validators

import "go.mongodb.org/mongo-driver/bson"

var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

var PrivateTourValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"name", "active", "created_at"},
		"additionalProperties": true,
		"properties": merge(
			bson.M{
				"_id":             bson.M{"bsonType": "objectId"},
				"name":            bson.M{"bsonType": "string", "minLength": 2, "maxLength": 120},
				"description":     bson.M{"bsonType": "string", "maxLength": 5000},
				"price_1_person":  nullablePrice,
				"price_2_persons": nullablePrice,
				"price_3_persons": nullablePrice,
				"price_4_persons": nullablePrice,
				"price_child":     nullablePrice,
				"available_days": bson.M{
					"bsonType": bson.A{"array", "null"},
					"items":    bson.M{"bsonType": "string", "enum": weekdays},
				},
				"booking_options": bson.M{"bsonType": "bool"},
				"active":          bson.M{"bsonType": "bool"},
				"created_at":      bson.M{"bsonType": "date"},
			},
			imageSlots("image1", "image2", "image3"),
		),
	},
}

var TourOptionValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"name", "price", "active"},
		"additionalProperties": true,
		"properties": bson.M{
			"_id":         bson.M{"bsonType": "objectId"},
			"name":        bson.M{"bsonType": "string", "minLength": 2, "maxLength": 120},
			"description": bson.M{"bsonType": "string", "maxLength": 1000},
			"price":       bson.M{"bsonType": bson.A{"double", "int", "long"}, "minimum": 0},
			"active":      bson.M{"bsonType": "bool"},
			"sort_order":  bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
		},
	},
}

var PrivateTourBookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"private_tour_id",
			"first_name",
			"last_name",
			"email",
			"phone",
			"adults",
			"tour_date",
			"total_price",
			"status",
			"created_at",
		},
		"additionalProperties": true,
		"properties": bson.M{
			"_id": bson.M{"bsonType": "objectId"},
			"private_tour_id": bson.M{
				"bsonType":  "string",
				"minLength": 24,
				"maxLength": 24,
			},
			"private_tour_name": bson.M{"bsonType": "string"},
			"first_name":        bson.M{"bsonType": "string", "maxLength": 80},
			"last_name":         bson.M{"bsonType": "string", "maxLength": 80},
			"email":             bson.M{"bsonType": "string"},
			"phone":             bson.M{"bsonType": "string"},
			"adults":            bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 1, "maximum": 30},
			"children":          bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0, "maximum": 30},
			"selected_options": bson.M{
				"bsonType": bson.A{"array", "null"},
				"items":    bson.M{"bsonType": "string"},
			},
			"tour_date":   bson.M{"bsonType": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
			"total_price": bson.M{"bsonType": bson.A{"double", "int", "long"}, "minimum": 0},
			"status": bson.M{
				"bsonType": "string",
				"enum": []string{
					"pending",
					"confirmed",
					"cancelled",
				},
			},
			"created_at": bson.M{"bsonType": "date"},
		},
	},
}
