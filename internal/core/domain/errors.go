package domain

import "errors"

var ErrNotFound = errors.New("record not found")
var ErrInvalidID = errors.New("invalid record id")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccountExists = errors.New("account already exists")
var ErrWrongPassword = errors.New("current password is incorrect")
var ErrEmptyUpdate = errors.New("update contains no fields")
var ErrFileTooLarge = errors.New("file size too large")
var ErrFileTypeNotAllowed = errors.New("file type not allowed")
var ErrTooManyFiles = errors.New("too many files in bulk upload")
