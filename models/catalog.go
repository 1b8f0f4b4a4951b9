// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Category is a movie genre. Name is stored normalized and is unique.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Person is the shared shape of actors and directors: a normalized
// (name, surname) pair that is unique per table.
type Person struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// DisplayName renders the person as "Name Surname".
func (p Person) DisplayName() string {
	return strings.TrimSpace(p.Name + " " + p.Surname)
}

// Actor appears in many movies.
type Actor = Person

// Director directs many movies; deleting one removes its movies.
type Director = Person

// EntityKind names one of the normalized catalog tables.
type EntityKind string

const (
	EntityCategory EntityKind = "categories"
	EntityActor    EntityKind = "actors"
	EntityDirector EntityKind = "directors"
)
