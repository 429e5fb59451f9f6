package road

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// CachePath returns the sibling cache file path for a map file, e.g.
// "city.geojson" -> "city.geojson.cache.bin".
func CachePath(mapPath string) string {
	return mapPath + ".cache.bin"
}

// WriteCache serializes roads to w in the little-endian binary layout
// from the external-interfaces cache format: a u64 count followed by
// one fixed-plus-variable-length record per Road.
func WriteCache(w io.Writer, roads []Road) error {
	bw := bufio.NewWriter(w)

	if err := binary.Write(bw, binary.LittleEndian, uint64(len(roads))); err != nil {
		return fmt.Errorf("%w: %v", ErrCacheIO, err)
	}

	for _, r := range roads {
		if err := writeRoad(bw, r); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrCacheIO, err)
	}

	return nil
}

func writeRoad(w io.Writer, r Road) error {
	fields := []any{
		uint32(r.ID),
		uint64(len(r.Points)),
	}
	for _, p := range fields {
		if err := binary.Write(w, binary.LittleEndian, p); err != nil {
			return fmt.Errorf("%w: %v", ErrCacheIO, err)
		}
	}

	for _, p := range r.Points {
		if err := binary.Write(w, binary.LittleEndian, p.Lon); err != nil {
			return fmt.Errorf("%w: %v", ErrCacheIO, err)
		}
		if err := binary.Write(w, binary.LittleEndian, p.Lat); err != nil {
			return fmt.Errorf("%w: %v", ErrCacheIO, err)
		}
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(r.Highway)); err != nil {
		return fmt.Errorf("%w: %v", ErrCacheIO, err)
	}

	if err := writeString(w, r.Name); err != nil {
		return err
	}
	if err := writeString(w, r.Ref); err != nil {
		return err
	}

	bools := []bool{r.Roundabout, r.Oneway, r.Bridge}
	for _, b := range bools {
		if err := binary.Write(w, binary.LittleEndian, boolByte(b)); err != nil {
			return fmt.Errorf("%w: %v", ErrCacheIO, err)
		}
	}

	if err := binary.Write(w, binary.LittleEndian, r.Maxspeed); err != nil {
		return fmt.Errorf("%w: %v", ErrCacheIO, err)
	}
	if err := binary.Write(w, binary.LittleEndian, r.Lanes); err != nil {
		return fmt.Errorf("%w: %v", ErrCacheIO, err)
	}

	bools = []bool{r.Toll, r.Lit}
	for _, b := range bools {
		if err := binary.Write(w, binary.LittleEndian, boolByte(b)); err != nil {
			return fmt.Errorf("%w: %v", ErrCacheIO, err)
		}
	}

	return nil
}

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, uint64(len(s))); err != nil {
		return fmt.Errorf("%w: %v", ErrCacheIO, err)
	}
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("%w: %v", ErrCacheIO, err)
	}

	return nil
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}

	return 0
}

// ReadCache deserializes a Road list from r, the inverse of WriteCache.
func ReadCache(r io.Reader) ([]Road, error) {
	br := bufio.NewReader(r)

	var count uint64
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCacheIO, err)
	}

	roads := make([]Road, count)
	for i := range roads {
		road, err := readRoad(br)
		if err != nil {
			return nil, err
		}
		roads[i] = road
	}

	return roads, nil
}

func readRoad(r io.Reader) (Road, error) {
	var id uint32
	if err := binary.Read(r, binary.LittleEndian, &id); err != nil {
		return Road{}, fmt.Errorf("%w: %v", ErrCacheCorrupt, err)
	}

	var n uint64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return Road{}, fmt.Errorf("%w: %v", ErrCacheCorrupt, err)
	}
	if n == 0 {
		return Road{}, fmt.Errorf("%w: zero-length coordinate sequence", ErrCacheCorrupt)
	}

	points := make([]Point, n)
	for i := range points {
		if err := binary.Read(r, binary.LittleEndian, &points[i].Lon); err != nil {
			return Road{}, fmt.Errorf("%w: %v", ErrCacheCorrupt, err)
		}
		if err := binary.Read(r, binary.LittleEndian, &points[i].Lat); err != nil {
			return Road{}, fmt.Errorf("%w: %v", ErrCacheCorrupt, err)
		}
	}

	var highway uint32
	if err := binary.Read(r, binary.LittleEndian, &highway); err != nil {
		return Road{}, fmt.Errorf("%w: %v", ErrCacheCorrupt, err)
	}

	name, err := readString(r)
	if err != nil {
		return Road{}, err
	}
	ref, err := readString(r)
	if err != nil {
		return Road{}, err
	}

	roundabout, err := readBool(r)
	if err != nil {
		return Road{}, err
	}
	oneway, err := readBool(r)
	if err != nil {
		return Road{}, err
	}
	bridge, err := readBool(r)
	if err != nil {
		return Road{}, err
	}

	var maxspeed, lanes int32
	if err := binary.Read(r, binary.LittleEndian, &maxspeed); err != nil {
		return Road{}, fmt.Errorf("%w: %v", ErrCacheCorrupt, err)
	}
	if err := binary.Read(r, binary.LittleEndian, &lanes); err != nil {
		return Road{}, fmt.Errorf("%w: %v", ErrCacheCorrupt, err)
	}

	toll, err := readBool(r)
	if err != nil {
		return Road{}, err
	}
	lit, err := readBool(r)
	if err != nil {
		return Road{}, err
	}

	return Road{
		ID:         int32(id),
		Points:     points,
		Highway:    HighwayType(highway),
		Name:       name,
		Ref:        ref,
		Roundabout: roundabout,
		Oneway:     oneway,
		Bridge:     bridge,
		Maxspeed:   maxspeed,
		Lanes:      lanes,
		Toll:       toll,
		Lit:        lit,
	}, nil
}

func readString(r io.Reader) (string, error) {
	var n uint64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCacheCorrupt, err)
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCacheCorrupt, err)
	}

	return string(buf), nil
}

func readBool(r io.Reader) (bool, error) {
	var b uint8
	if err := binary.Read(r, binary.LittleEndian, &b); err != nil {
		return false, fmt.Errorf("%w: %v", ErrCacheCorrupt, err)
	}

	return b != 0, nil
}

// LoadOrParse reads roads from the cache sibling of mapPath when it
// exists, otherwise parses mapPath line by line and writes the cache
// for next time. Mirrors the "cache read in preference to re-parsing"
// rule.
func LoadOrParse(mapPath string) ([]Road, error) {
	cachePath := CachePath(mapPath)

	if f, err := os.Open(cachePath); err == nil {
		defer f.Close()

		roads, err := ReadCache(f)
		if err == nil {
			return roads, nil
		}
	}

	f, err := os.Open(mapPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCacheIO, err)
	}
	defer f.Close()

	roads, err := parseAll(f)
	if err != nil {
		return nil, err
	}

	if cf, err := os.Create(cachePath); err == nil {
		_ = WriteCache(cf, roads)
		_ = cf.Close()
	}

	return roads, nil
}

func parseAll(r io.Reader) ([]Road, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var roads []Road
	var id int32

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		road, err := ParseLine(line, id)
		if err != nil {
			return nil, err
		}
		roads = append(roads, road)
		id++
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCacheIO, err)
	}

	return roads, nil
}
