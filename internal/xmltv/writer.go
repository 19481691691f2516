// Package xmltv serializes all teams' programme streams into a single
// XMLTV document, written atomically.
package xmltv

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/albapepper/teamarr/internal/model"
)

const xmltvTimeLayout = "20060102150405 -0700"

type tvDocument struct {
	XMLName  xml.Name     `xml:"tv"`
	Channels []tvChannel  `xml:"channel"`
	Programs []tvProgramme `xml:"programme"`
}

type tvChannel struct {
	ID          string `xml:"id,attr"`
	DisplayName string `xml:"display-name"`
	Icon        *tvIcon `xml:"icon,omitempty"`
}

type tvIcon struct {
	Src string `xml:"src,attr"`
}

type tvProgramme struct {
	Start       string   `xml:"start,attr"`
	Stop        string   `xml:"stop,attr"`
	Channel     string   `xml:"channel,attr"`
	Title       string   `xml:"title"`
	SubTitle    string   `xml:"sub-title,omitempty"`
	Description string   `xml:"desc,omitempty"`
	Categories  []string `xml:"category,omitempty"`
	Icon        *tvIcon  `xml:"icon,omitempty"`
}

// Channel is one team's channel entry.
type Channel struct {
	ID          string
	DisplayName string
	Icon        string
}

// Write serializes channels and their programmes to outputPath, building the
// file at a temporary path and renaming it into place so readers never
// observe a partially written document.
func Write(outputPath string, channels []Channel, programmesByChannel map[string][]model.Programme) error {
	doc := tvDocument{
		Channels: make([]tvChannel, 0, len(channels)),
	}

	for _, ch := range channels {
		c := tvChannel{ID: ch.ID, DisplayName: ch.DisplayName}
		if ch.Icon != "" {
			c.Icon = &tvIcon{Src: ch.Icon}
		}
		doc.Channels = append(doc.Channels, c)

		progs := append([]model.Programme(nil), programmesByChannel[ch.ID]...)
		sort.Slice(progs, func(i, j int) bool { return progs[i].StartUTC.Before(progs[j].StartUTC) })

		for _, p := range progs {
			tp := tvProgramme{
				Start:       p.StartUTC.UTC().Format(xmltvTimeLayout),
				Stop:        p.StopUTC.UTC().Format(xmltvTimeLayout),
				Channel:     ch.ID,
				Title:       p.Title,
				SubTitle:    p.Subtitle,
				Description: p.Description,
				Categories:  p.Categories,
			}
			if p.Icon != "" {
				tp.Icon = &tvIcon{Src: p.Icon}
			}
			doc.Programs = append(doc.Programs, tp)
		}
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal xmltv document: %w", err)
	}
	payload := append([]byte(xml.Header), out...)

	return writeAtomic(outputPath, payload)
}

func writeAtomic(outputPath string, payload []byte) error {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".epg-*.xml.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, outputPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}

// ChannelIDFor returns the stable channel id for a team.
func ChannelIDFor(provider, providerTeamID string) string {
	return fmt.Sprintf("teamarr-team-%s-%s", provider, providerTeamID)
}
