package main

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/domonda/go-gridview"
)

type user struct {
	ID      int       `col:"id"`
	Name    string    `col:"name"`
	Email   string    `col:"email"`
	Role    string    `col:"role"`
	Logins  int       `col:"logins"`
	Created time.Time `col:"created"`
}

var sortableAttributes = []string{"id", "name", "email", "role", "logins", "created"}

func demoUsers() []user {
	names := []string{
		"Ada Lovelace", "Alan Turing", "Barbara Liskov", "Dennis Ritchie",
		"Donald Knuth", "Edsger Dijkstra", "Frances Allen", "Grace Hopper",
		"Ken Thompson", "Leslie Lamport", "Margaret Hamilton", "Niklaus Wirth",
		"Radia Perlman", "Rob Pike", "Robert Griesemer", "Tony Hoare",
	}
	roles := []string{"admin", "editor", "viewer"}
	created := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	users := make([]user, len(names))
	for i, name := range names {
		users[i] = user{
			ID:      i + 1,
			Name:    name,
			Email:   strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
			Role:    roles[i%len(roles)],
			Logins:  (i*7919 + 13) % 2500,
			Created: created.AddDate(0, 0, i*11),
		}
	}
	return users
}

// sortUsers returns a sorted copy of users.
func sortUsers(users []user, sort *gridview.Sort) []user {
	sorted := slices.Clone(users)
	slices.SortStableFunc(sorted, func(a, b user) int {
		for _, field := range sort.Order {
			c := compareUsers(a, b, field.Attribute)
			if field.Descending {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})
	return sorted
}

func compareUsers(a, b user, attribute string) int {
	switch attribute {
	case "id":
		return cmp.Compare(a.ID, b.ID)
	case "name":
		return strings.Compare(a.Name, b.Name)
	case "email":
		return strings.Compare(a.Email, b.Email)
	case "role":
		return strings.Compare(a.Role, b.Role)
	case "logins":
		return cmp.Compare(a.Logins, b.Logins)
	case "created":
		return a.Created.Compare(b.Created)
	}
	return 0
}

// filterUsers returns the users whose name contains
// the case insensitive search string and that have the role
// if role is not empty.
func filterUsers(users []user, search, role string) []user {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" && role == "" {
		return users
	}
	var filtered []user
	for _, u := range users {
		if search != "" && !strings.Contains(strings.ToLower(u.Name), search) {
			continue
		}
		if role != "" && u.Role != role {
			continue
		}
		filtered = append(filtered, u)
	}
	return filtered
}
