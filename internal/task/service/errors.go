package service

import (
	commonerrors "github.com/m-orlov/taskboard/internal/common/errors"
)

var ErrTaskNotFound = commonerrors.NewDomainError(
	"TASK_NOT_FOUND",
	commonerrors.CategoryNotFound,
	404,
	"task not found",
)
