package skills

import "errors"

var (
	ErrCategoryNotFound = errors.New("skill category not found")
	ErrSkillNotFound    = errors.New("skill not found")
	ErrDuplicateName    = errors.New("name already exists")
	ErrCategoryInUse    = errors.New("category still has skills")
)
