package modelutil

import (
	"gorm.io/gorm"
)

// Deps is what every generated module is constructed from.
type Deps struct {
	DB   *gorm.DB
	Auth *Auth
}
