package validators

import "go.mongodb.org/mongo-driver/bson"

var SiteSettingsValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"business_name"},
		"additionalProperties": true,
		"properties": bson.M{
			"_id":            bson.M{"bsonType": "objectId"},
			"business_name":  bson.M{"bsonType": "string", "minLength": 2, "maxLength": 120},
			"logo_url":       nullableString,
			"whatsapp":       bson.M{"bsonType": "string", "maxLength": 30},
			"hero_video_url": nullableString,
			"updated_at":     bson.M{"bsonType": "date"},
		},
	},
}

// AdminValidator only accepts bcrypt hashes in password_hash.
var AdminValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"username", "password_hash", "created_at"},
		"additionalProperties": true,
		"properties": bson.M{
			"_id":           bson.M{"bsonType": "objectId"},
			"username":      bson.M{"bsonType": "string", "minLength": 3, "maxLength": 60},
			"password_hash": bson.M{"bsonType": "string", "pattern": `^\$2[aby]\$`},
			"name":          bson.M{"bsonType": "string"},
			"created_at":    bson.M{"bsonType": "date"},
		},
	},
}
