package util

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

func Abs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

func Round(x float32) float32 {
	return float32(math.Round(float64(x)))
}

func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

func Atan2(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}

func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func ToRadian(angle float32) float32 {
	return mgl32.DegToRad(angle)
}

func Mix64(a, b float32, factor float64) float32 {
	return float32(float64(a)*(1.0-factor) + factor*float64(b))
}

func EucledianDistance3D(one, two mgl32.Vec3) float32 {
	return float32(math.Sqrt(float64((one.X()-two.X())*(one.X()-two.X()) + (one.Y()-two.Y())*(one.Y()-two.Y()) + (one.Z()-two.Z())*(one.Z()-two.Z()))))
}

func Clamp32(value, min, max float32) float32 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// SlerpQuat interpolates between two unit quaternions along the shorter arc.
// Falls back to a normalized lerp when the inputs are nearly parallel, where
// the spherical formula would divide by a vanishing sine.
func SlerpQuat(one, two mgl32.Quat, factor float64) mgl32.Quat {
	dotProduct := float64(one.Dot(two))
	if dotProduct < 0 {
		two = two.Scale(-1)
		dotProduct = -dotProduct
	}
	if dotProduct > 0.9995 {
		return one.Scale(float32(1.0 - factor)).Add(two.Scale(float32(factor))).Normalize()
	}
	a := math.Acos(dotProduct)
	sinA := math.Sin(a)
	return one.Scale(float32(math.Sin(a*(1.0-factor)) / sinA)).Add(two.Scale(float32(math.Sin(a*factor) / sinA)))
}

func ExtractRotation(transformMatrix mgl32.Mat4) mgl32.Quat {
	return mgl32.Mat4ToQuat(transformMatrix.Mat3().Mat4())
}

func ExtractPosition(transformMatrix mgl32.Mat4) mgl32.Vec3 {
	return transformMatrix.Col(3).Vec3()
}

/* TS
function easeInOutQuad(x: number): number {
return x < 0.5 ? 2 * x * x : 1 - Math.pow(-2 * x + 2, 2) / 2;
}

*/

func EaseInOutQuad(x float64) float64 {
	if x < 0.5 {
		return 2 * x * x
	} else {
		return 1 - math.Pow(-2*x+2, 2)/2
	}
}

/* TS
function easeOutQuart(x: number): number {
return 1 - Math.pow(1 - x, 4);
}
*/

func EaseOutQuart(x float64) float64 {
	return 1 - math.Pow(1-x, 4)
}

/*
function easeOutSine(x: number): number {
  return Math.sin((x * Math.PI) / 2);
}
*/

func EaseOutSine(x float64) float64 {
	return math.Sin((x * math.Pi) / 2)
}

func EaseLinear(x float64) float64 {
	return x
}
