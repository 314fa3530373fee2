// This file is part of Rustation.
//
// Rustation is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Rustation is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Rustation.  If not, see <https://www.gnu.org/licenses/>.

package gpu

// VRAM dimensions. The entire addressable video memory is a fixed 1024x512
// array of 16bit pixels and is the sole texture source for draw commands.
const (
	VRAMWidthPixels = 1024
	VRAMHeight      = 512
	VRAMPixels      = VRAMWidthPixels * VRAMHeight
)

// VideoClock distinguishes between the two console variants. There are a few
// hardware differences between PAL and NTSC consoles, in particular the
// pixelclock runs slightly slower on PAL consoles.
type VideoClock int

// List of valid VideoClock values.
const (
	Ntsc VideoClock = iota
	Pal
)

func (clk VideoClock) String() string {
	switch clk {
	case Ntsc:
		return "NTSC"
	case Pal:
		return "PAL"
	}
	return "unknown"
}

// Framerate returns the precise framerate of the video output for the clock.
// It's actually possible to configure the GPU to output with NTSC timings
// with the PAL clock (and vice-versa) but it wouldn't make a lot of sense
// for a game to do that.
func (clk VideoClock) Framerate() float32 {
	switch clk {
	case Ntsc:
		// 53.690MHz GPU clock frequency, 263 lines per field, 3413 cycles
		// per line
		return 59.81
	case Pal:
		// 53.222MHz GPU clock frequency, 314 lines per field, 3406 cycles
		// per line
		return 49.76
	}
	return 0
}
