package mongo

import (
	"regexp"
	"testing"

	authservice "islatours/internal/auth/service"
	"islatours/internal/migrations/mongo/validators"

	"go.mongodb.org/mongo-driver/bson"
)

func TestCollections_CoverEveryStore(t *testing.T) {
	want := []string{
		"paquetes",
		"gallery",
		"videos",
		"meeting_points",
		"private_tours",
		"tour_additional_options",
		"private_tour_bookings",
		"admin",
		"admins",
	}

	defs := Collections()
	if len(defs) != len(want) {
		t.Errorf("expected %d collections, got %d", len(want), len(defs))
	}
	for _, name := range want {
		def, ok := defs[name]
		if !ok {
			t.Errorf("missing collection %s", name)
			continue
		}
		if _, ok := def.Validator["$jsonSchema"]; !ok {
			t.Errorf("%s has no json schema", name)
		}
	}
}

func TestAdminValidator_AcceptsBcryptHashes(t *testing.T) {
	schema := validators.AdminValidator["$jsonSchema"].(bson.M)
	props := schema["properties"].(bson.M)
	pattern := regexp.MustCompile(props["password_hash"].(bson.M)["pattern"].(string))

	hash, err := authservice.HashPassword("reef-2026")
	if err != nil {
		t.Fatal(err)
	}
	if !pattern.MatchString(hash) {
		t.Errorf("bcrypt hash %q rejected by schema", hash)
	}
	if pattern.MatchString("reef-2026") {
		t.Error("plaintext password accepted by schema")
	}
}
