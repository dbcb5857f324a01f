package main

//go:generate echo "Generating SQLC files..."
//go:generate bash -c "export PATH=$$PATH:~/go/bin && sqlc generate -f ../storage/sqlc.yaml"
//go:generate echo "SQLC files generated"

//go:generate echo "Generating templ files..."
//go:generate bash -c "export PATH=$$PATH:~/go/bin && templ generate -path ../views"
//go:generate echo "Templ files generated"

// This file contains go:generate directives for the SQLC query code in
// storage/db and the templ components in views. To regenerate after editing
// storage/queries or a .templ file, run:
//
// go generate ./...
//
// from the project root directory.
