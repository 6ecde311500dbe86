package main

import "fmt"

// Categorías de error que el handler HTTP traduce a códigos de estado.

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

type UpstreamError struct {
	Msg string
	Err error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *UpstreamError) Unwrap() error { return e.Err }

type StorageError struct {
	Msg string
	Err error
}

func (e *StorageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *StorageError) Unwrap() error { return e.Err }

func validationErr(msg string) error          { return &ValidationError{Msg: msg} }
func notFoundErr(msg string) error            { return &NotFoundError{Msg: msg} }
func upstreamErr(msg string, err error) error { return &UpstreamError{Msg: msg, Err: err} }
func storageErr(msg string, err error) error  { return &StorageError{Msg: msg, Err: err} }
