package aggpath

// drain pulls tokens from src until CmdStop, including the terminal
// Stop token, and returns them as a slice for comparison in tests.
func drain(src VertexSource) []Vertex {
	var out []Vertex
	for {
		v := src.Next()
		out = append(out, v)
		if v.Cmd == CmdStop {
			return out
		}
	}
}

func m(x, y float64) Vertex    { return Vertex{Cmd: CmdMoveTo, X: x, Y: y} }
func l(x, y float64) Vertex    { return Vertex{Cmd: CmdLineTo, X: x, Y: y} }
func c3(x, y float64) Vertex   { return Vertex{Cmd: CmdCurve3, X: x, Y: y} }
func c4(x, y float64) Vertex   { return Vertex{Cmd: CmdCurve4, X: x, Y: y} }
func closeV() Vertex           { return Vertex{Cmd: CmdClose} }
