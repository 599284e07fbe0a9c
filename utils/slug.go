package utils

import "github.com/gosimple/slug"

func Slugify(nome string) string {
	return slug.Make(nome)
}
