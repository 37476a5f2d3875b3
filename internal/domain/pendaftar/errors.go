package pendaftar

import "errors"

var (
	ErrPendaftarNotFound    = errors.New("pendaftar not found")
	ErrInvalidStatus        = errors.New("invalid pendaftar status")
	ErrPendaftarNotAccepted = errors.New("pendaftar has not been accepted")
	ErrKTAAlreadyGenerated  = errors.New("nomor KTA has already been generated")
	ErrKTAExists            = errors.New("nomor KTA is already used by another pendaftar")
	ErrKTARequiresAccepted  = errors.New("pendaftar with nomor KTA must stay accepted")
)
