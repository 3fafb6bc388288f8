package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/jvlmdr/bof/go/geomblur"
	"github.com/jvlmdr/go-file/fileutil"
)

type imageEntry struct {
	Image     string
	Keypoints string
}

func parseImageList(lines []string, dir string) ([]imageEntry, error) {
	var ims []imageEntry
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want image and keypoint file, got %d fields", i+1, len(fields))
		}
		ims = append(ims, imageEntry{path.Join(dir, fields[0]), path.Join(dir, fields[1])})
	}
	return ims, nil
}

func loadImage(name string) (image.Image, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	im, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return im, nil
}

func loadKeypoints(name string) ([]geomblur.Keypoint, error) {
	lines, err := fileutil.LoadLines(name)
	if err != nil {
		return nil, err
	}
	var keypoints []geomblur.Keypoint
	for i, line := range lines {
		k, ok, err := parseKeypoint(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %v", name, i+1, err)
		}
		if ok {
			keypoints = append(keypoints, k)
		}
	}
	return keypoints, nil
}

// parseKeypoint reads "x y [octave]". Blank lines are skipped.
func parseKeypoint(line string) (geomblur.Keypoint, bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return geomblur.Keypoint{}, false, nil
	}
	if len(fields) != 2 && len(fields) != 3 {
		return geomblur.Keypoint{}, false, fmt.Errorf("want 2 or 3 fields, got %d", len(fields))
	}
	var (
		k   geomblur.Keypoint
		err error
	)
	if k.X, err = strconv.ParseFloat(fields[0], 64); err != nil {
		return k, false, err
	}
	if k.Y, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return k, false, err
	}
	if len(fields) == 3 {
		if k.Octave, err = strconv.Atoi(fields[2]); err != nil {
			return k, false, err
		}
	}
	return k, true, nil
}
