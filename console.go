package main

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/seqsense/pcgol/mat"
)

type console struct {
	s *scene
}

var errArgumentNumber = errors.New("invalid number of arguments")
var errArgumentValue = errors.New("invalid argument value")
var errInvalidCommand = errors.New("invalid command")

// maxFPS bounds the frame rate settable from the console.
const maxFPS = 1000

func degrees(rad float64) float32 {
	return float32(rad * 180 / math.Pi)
}

var consoleCommands = map[string]func(s *scene, args []float32) ([][]float32, error){
	"position": func(s *scene, args []float32) ([][]float32, error) {
		switch len(args) {
		case 0:
		case 3:
			s.cam.SetPosition(mat.Vec3{args[0], args[1], args[2]})
		default:
			return nil, errArgumentNumber
		}
		p := s.cam.Position()
		return [][]float32{{p[0], p[1], p[2]}}, nil
	},
	"look_at": func(s *scene, args []float32) ([][]float32, error) {
		if len(args) != 3 {
			return nil, errArgumentNumber
		}
		target := mat.Vec3{args[0], args[1], args[2]}
		if target.Equal(s.cam.Position()) {
			return nil, errArgumentValue
		}
		s.cam.LookAt(target)
		return [][]float32{{degrees(s.cam.Pitch()), degrees(s.cam.Yaw())}}, nil
	},
	"rotation": func(s *scene, args []float32) ([][]float32, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		return [][]float32{{degrees(s.cam.Pitch()), degrees(s.cam.Yaw())}}, nil
	},
	"subdivide": func(s *scene, args []float32) ([][]float32, error) {
		switch len(args) {
		case 0:
		case 1:
			s.setSubdivide(int(args[0]))
		default:
			return nil, errArgumentNumber
		}
		return [][]float32{{float32(s.subdivide), float32(len(s.models))}}, nil
	},
	"fps": func(s *scene, args []float32) ([][]float32, error) {
		switch len(args) {
		case 0:
		case 1:
			if args[0] < 1 || args[0] > maxFPS {
				return nil, errArgumentValue
			}
			s.clk.SetFPS(int(args[0]))
		default:
			return nil, errArgumentNumber
		}
		return [][]float32{{float32(s.clk.FPS())}}, nil
	},
	"delta": func(s *scene, args []float32) ([][]float32, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		return [][]float32{{
			float32(s.clk.Delta()),
			float32(s.clk.Elapsed().Seconds() * 1000),
		}}, nil
	},
}

func (c *console) Run(line string) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", nil
	}
	fn, ok := consoleCommands[args[0]]
	if !ok {
		return "", errInvalidCommand
	}
	var argsFloat []float32
	for i := 1; i < len(args); i++ {
		f, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return "", err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", errArgumentValue
		}
		argsFloat = append(argsFloat, float32(f))
	}
	res, err := fn(c.s, argsFloat)
	if err != nil {
		return "", err
	}
	var resStr []string
	for _, vv := range res {
		var resLine []string
		for _, v := range vv {
			resLine = append(resLine, strconv.FormatFloat(float64(v), 'f', 3, 32))
		}
		resStr = append(resStr, strings.Join(resLine, " "))
	}
	return strings.Join(resStr, "\n"), nil
}
