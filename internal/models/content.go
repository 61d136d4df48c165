// content.go
//
// Relational replacement for the Monastery360 browser localStorage data layer
// Copyright (c) 2026 Monastery360 Project
//
// This file is part of monastery360-datastore.
// monastery360-datastore is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// monastery360-datastore is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with
// monastery360-datastore. If not, see <https://www.gnu.org/licenses/>.

package models

import "time"

// Location is a WGS84 coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Contact holds visitor contact details for a monastery.
type Contact struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// NearbySpot is a point of interest near a monastery, ordered by curation.
type NearbySpot struct {
	Name       string  `json:"name"`
	DistanceKm float64 `json:"distanceKm"`
}

// Monastery is a managed content record.
type Monastery struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Description    string       `json:"description,omitempty"`
	Image          string       `json:"image,omitempty"`
	Photos         []string     `json:"photos,omitempty"`
	Contact        Contact      `json:"contact,omitempty"`
	NearbySpots    []NearbySpot `json:"nearbySpots,omitempty"`
	Location       *Location    `json:"location,omitempty"`
	Established    string       `json:"established,omitempty"`
	Type           string       `json:"type,omitempty"`
	Highlights     []string     `json:"highlights,omitempty"`
	HasVirtualTour bool         `json:"hasVirtualTour,omitempty"`
	HasArchives    bool         `json:"hasArchives,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
	CreatedBy      string       `json:"createdBy,omitempty"`
	UpdatedAt      *time.Time   `json:"updatedAt,omitempty"`
	UpdatedBy      string       `json:"updatedBy,omitempty"`
}

// MonasteryPatch is a partial update. Nil fields leave the record untouched,
// so an invalid or absent key can never silently enter a record.
type MonasteryPatch struct {
	Name           *string       `json:"name,omitempty"`
	Description    *string       `json:"description,omitempty"`
	Image          *string       `json:"image,omitempty"`
	Photos         *[]string     `json:"photos,omitempty"`
	Contact        *Contact      `json:"contact,omitempty"`
	NearbySpots    *[]NearbySpot `json:"nearbySpots,omitempty"`
	Location       *Location     `json:"location,omitempty"`
	Established    *string       `json:"established,omitempty"`
	Type           *string       `json:"type,omitempty"`
	Highlights     *[]string     `json:"highlights,omitempty"`
	HasVirtualTour *bool         `json:"hasVirtualTour,omitempty"`
	HasArchives    *bool         `json:"hasArchives,omitempty"`
}

// Apply shallow-merges the patch over m.
func (p MonasteryPatch) Apply(m *Monastery) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Image != nil {
		m.Image = *p.Image
	}
	if p.Photos != nil {
		m.Photos = *p.Photos
	}
	if p.Contact != nil {
		m.Contact = *p.Contact
	}
	if p.NearbySpots != nil {
		m.NearbySpots = *p.NearbySpots
	}
	if p.Location != nil {
		m.Location = p.Location
	}
	if p.Established != nil {
		m.Established = *p.Established
	}
	if p.Type != nil {
		m.Type = *p.Type
	}
	if p.Highlights != nil {
		m.Highlights = *p.Highlights
	}
	if p.HasVirtualTour != nil {
		m.HasVirtualTour = *p.HasVirtualTour
	}
	if p.HasArchives != nil {
		m.HasArchives = *p.HasArchives
	}
}

// Archive is a digitized item (manuscript, image, audio, ...).
type Archive struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Image       string     `json:"image,omitempty"`
	FileURL     string     `json:"fileUrl,omitempty"`
	Type        string     `json:"type,omitempty"`
	Downloads   int        `json:"downloads"`
	CreatedAt   time.Time  `json:"createdAt"`
	CreatedBy   string     `json:"createdBy,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy   string     `json:"updatedBy,omitempty"`
}

// ArchivePatch is a partial update for an archive record.
type ArchivePatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
	FileURL     *string `json:"fileUrl,omitempty"`
	Type        *string `json:"type,omitempty"`
}

// Apply shallow-merges the patch over a.
func (p ArchivePatch) Apply(a *Archive) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Image != nil {
		a.Image = *p.Image
	}
	if p.FileURL != nil {
		a.FileURL = *p.FileURL
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
}

// Event is a calendar entry with the display metadata the site renders.
type Event struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Title       string    `json:"title"`
	Description string    `json:"desc,omitempty"`
	Badge       string    `json:"badge,omitempty"`
	Color       string    `json:"color,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedBy   string    `json:"createdBy,omitempty"`
}

// Tour is a 360-degree virtual tour. Tours come from the content bundle and
// are served read-only; they are never written to the store.
type Tour struct {
	ID          string `json:"id"`
	MonasteryID string `json:"monasteryId"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Featured    bool   `json:"featured,omitempty"`
	VideoURL    string `json:"videoUrl,omitempty"`
	Video360URL string `json:"video360Url,omitempty"`
}
