// Package pb содержит protobuf-схему файла снимка каталога.
package pb

//go:generate protoc -I . --go_out=. --go_opt=paths=source_relative snapshot.proto
