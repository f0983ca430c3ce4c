package models

import (
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// uniqueSlug builds a URL-safe slug for a row being created. The base comes
// from the explicit slug if one was supplied (re-slugified so it is really a
// slug), otherwise from the name. Collisions are resolved by appending -1,
// -2, ... until the slug is free within the entity's own table.
func uniqueSlug(tx *gorm.DB, model interface{}, name, explicit string) (string, error) {
	base := slug.Make(name)
	if explicit != "" {
		base = slug.Make(explicit)
	}

	// Fresh session: tx inside a create hook carries the pending insert
	// statement and must not be reused for lookups.
	db := tx.Session(&gorm.Session{NewDB: true})

	candidate := base
	counter := 1
	for {
		var count int64
		if err := db.Model(model).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
		counter++
	}
}
