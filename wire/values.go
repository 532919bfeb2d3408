package wire

// Scalar covers the primitive field types the grouped values are built from.
type Scalar interface {
	~uint8 | ~int8 | ~uint16 | ~int16 | ~uint32 | ~float32
}

// Vec3 is an x/y/z triple, used for world positions, velocities and
// direction vectors.
type Vec3[T Scalar] struct {
	X, Y, Z T
}

// WheelValue carries one value per wheel. All Codemasters wheel arrays use
// the order RL, RR, FL, FR.
type WheelValue[T Scalar] struct {
	RearLeft   T
	RearRight  T
	FrontLeft  T
	FrontRight T
}

// FrontRear carries a front/rear pair, used by car setup fields.
type FrontRear[T Scalar] struct {
	Front T
	Rear  T
}

// WingValue carries per-wing values; the rear wing is a single element.
type WingValue[T Scalar] struct {
	FrontLeft  T
	FrontRight T
	Rear       T
}

// Vec3F32 reads three consecutive f32 values.
func Vec3F32(r *Reader) Vec3[float32] {
	return Vec3[float32]{X: r.F32(), Y: r.F32(), Z: r.F32()}
}

// Vec3I16 reads three consecutive i16 values.
func Vec3I16(r *Reader) Vec3[int16] {
	return Vec3[int16]{X: r.I16(), Y: r.I16(), Z: r.I16()}
}

// WheelsF32 reads four consecutive f32 values in RL, RR, FL, FR order.
func WheelsF32(r *Reader) WheelValue[float32] {
	return WheelValue[float32]{
		RearLeft:   r.F32(),
		RearRight:  r.F32(),
		FrontLeft:  r.F32(),
		FrontRight: r.F32(),
	}
}

// WheelsU16 reads four consecutive u16 values in RL, RR, FL, FR order.
func WheelsU16(r *Reader) WheelValue[uint16] {
	return WheelValue[uint16]{
		RearLeft:   r.U16(),
		RearRight:  r.U16(),
		FrontLeft:  r.U16(),
		FrontRight: r.U16(),
	}
}

// WheelsU8 reads four consecutive u8 values in RL, RR, FL, FR order.
func WheelsU8(r *Reader) WheelValue[uint8] {
	return WheelValue[uint8]{
		RearLeft:   r.U8(),
		RearRight:  r.U8(),
		FrontLeft:  r.U8(),
		FrontRight: r.U8(),
	}
}

// FrontRearU8 reads a front/rear u8 pair.
func FrontRearU8(r *Reader) FrontRear[uint8] {
	return FrontRear[uint8]{Front: r.U8(), Rear: r.U8()}
}

// FrontRearF32 reads a front/rear f32 pair.
func FrontRearF32(r *Reader) FrontRear[float32] {
	return FrontRear[float32]{Front: r.F32(), Rear: r.F32()}
}

// WingsU8 reads front-left, front-right and rear wing u8 values.
func WingsU8(r *Reader) WingValue[uint8] {
	return WingValue[uint8]{FrontLeft: r.U8(), FrontRight: r.U8(), Rear: r.U8()}
}
