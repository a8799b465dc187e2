package tab

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// MIDIWriter turns resolved chord events into a Standard MIDI File,
// one 16th-note step per event.
type MIDIWriter struct {
	ticksPerQuarter uint16
	tempo           float64
}

// NewMIDIWriter creates a writer with 480 ticks per quarter at 120 BPM.
func NewMIDIWriter() *MIDIWriter {
	return &MIDIWriter{
		ticksPerQuarter: 480,
		tempo:           120.0,
	}
}

// midiNote converts a resolved pitch to a MIDI note number (C4 = 60).
func midiNote(n ResolvedNote) (uint8, error) {
	num := (n.Octave+1)*12 + n.PitchClass
	if num < 0 || num > 127 {
		return 0, fmt.Errorf("%w: octave %d is outside the MIDI note range", ErrUnresolvableFret, n.Octave)
	}
	return uint8(num), nil
}

// Write renders the events as a single-track SMF. All members of a
// chord event start together; each event lasts three quarters of a
// step for a staccato feel.
func (m *MIDIWriter) Write(events []ResolvedEvent) ([]byte, error) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(m.ticksPerQuarter)

	var track smf.Track

	// tempo meta event (FF 51 03)
	microsecondsPerBeat := uint32(60000000.0 / m.tempo)
	track.Add(0, smf.Message([]byte{
		0xFF, 0x51, 0x03,
		byte(microsecondsPerBeat >> 16),
		byte(microsecondsPerBeat >> 8),
		byte(microsecondsPerBeat),
	}))

	// 4/4 time signature
	track.Add(0, smf.Message([]byte{0xFF, 0x58, 0x04, 0x04, 0x02, 0x18, 0x08}))

	ticksPerStep := uint32(m.ticksPerQuarter) / 4
	noteLength := (ticksPerStep * 3) / 4

	channel := uint8(0)
	velocity := uint8(100)
	gap := uint32(0)
	for _, ev := range events {
		notes := make([]uint8, 0, len(ev.Notes))
		for _, n := range ev.Notes {
			num, err := midiNote(n)
			if err != nil {
				return nil, err
			}
			notes = append(notes, num)
		}
		if len(notes) == 0 {
			continue
		}
		delta := gap
		for _, num := range notes {
			track.Add(delta, midi.NoteOn(channel, num, velocity))
			delta = 0
		}
		delta = noteLength
		for _, num := range notes {
			track.Add(delta, midi.NoteOff(channel, num))
			delta = 0
		}
		gap = ticksPerStep - noteLength
	}

	track.Close(0)
	if err := s.Add(track); err != nil {
		return nil, fmt.Errorf("failed to add track: %w", err)
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write MIDI: %w", err)
	}
	return buf.Bytes(), nil
}

// ConvertToMIDI parses the document's tab blocks and writes their chord
// events, in input order, as one Standard MIDI File. Pass-through text
// contributes nothing. Octaves are required to place notes, so the
// export refuses omit-octaves configurations.
func (c *Converter) ConvertToMIDI(lines []string) ([]byte, error) {
	if c.cfg.OmitOctaves {
		return nil, fmt.Errorf("%w: MIDI export needs octaves", ErrMalformedConfig)
	}
	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}
	items, err := c.parseDocument(lines)
	if err != nil {
		return nil, err
	}
	var all []ResolvedEvent
	for _, it := range items {
		if it.block == nil {
			continue
		}
		if err := c.checkOverrides(it.block); err != nil {
			return nil, fmt.Errorf("line %d: %w", it.block.FirstLine, err)
		}
		resolved, err := ResolveEvents(AlignBlock(it.block.Strings), it.block.Tunings, c.cfg)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", it.block.FirstLine, err)
		}
		all = append(all, resolved...)
	}
	return NewMIDIWriter().Write(all)
}

// ConvertFileToMIDI reads a tab file and writes its MIDI rendition.
func (c *Converter) ConvertFileToMIDI(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	result, err := c.ConvertToMIDI(lines)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	if err := os.WriteFile(outputPath, result, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
