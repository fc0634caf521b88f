package util

import (
    "encoding/json"
    "github.com/go-gl/mathgl/mgl32"
)

type Transformer interface {
    GetTransformMatrix() mgl32.Mat4
}

type Transform struct {
    parent      Transformer
    translation mgl32.Vec3
    rotation    mgl32.Quat
    scale       mgl32.Vec3
    nameOfOwner string
}

func (t *Transform) GetName() string {
    return t.nameOfOwner
}
func (t *Transform) SetName(name string) {
    t.nameOfOwner = name
}

// SetParent attaches this transform to another one. World queries compose
// with the parent chain until SetParent(nil) detaches it again.
func (t *Transform) SetParent(parent Transformer) {
    t.parent = parent
}
func (t *Transform) HasParent() bool {
    return t.parent != nil
}
func NewDefaultTransform(name string) *Transform {
    return &Transform{
        translation: mgl32.Vec3{0, 0, 0},
        rotation:    mgl32.QuatIdent(),
        scale:       mgl32.Vec3{1, 1, 1},
        nameOfOwner: name,
    }
}

func NewTransform(position mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3) *Transform {
    return &Transform{
        translation: position,
        rotation:    rotation,
        scale:       scale,
    }
}

func NewTransformFromForward(position mgl32.Vec3, forward mgl32.Vec3) *Transform {
    t := &Transform{
        translation: position,
        rotation:    mgl32.QuatIdent(),
        scale:       mgl32.Vec3{1, 1, 1},
    }
    t.SetForward(forward)
    return t
}

func (t *Transform) MarshalJSON() ([]byte, error) {
    return json.Marshal(struct {
        Name     string     `json:"name"`
        Position mgl32.Vec3 `json:"translation"`
        Rotation mgl32.Quat `json:"rotation"`
        Scale    mgl32.Vec3 `json:"scale"`
    }{
        Name:     t.nameOfOwner,
        Position: t.translation,
        Rotation: t.rotation,
        Scale:    t.scale,
    })
}

func (t *Transform) UnmarshalJSON(data []byte) error {
    var tmp struct {
        Name     string     `json:"name"`
        Position mgl32.Vec3 `json:"translation"`
        Rotation mgl32.Quat `json:"rotation"`
        Scale    mgl32.Vec3 `json:"scale"`
    }
    err := json.Unmarshal(data, &tmp)
    if err != nil {
        return err
    }
    t.nameOfOwner = tmp.Name
    t.translation = tmp.Position
    t.rotation = tmp.Rotation
    t.scale = tmp.Scale
    return nil
}

// GetTransformMatrix uses the translation, rotation, and scale to create a matrix that represents the transformation of the object.
func (t *Transform) GetTransformMatrix() mgl32.Mat4 {
    local := t.GetLocalTransform()
    if t.parent != nil {
        return t.parent.GetTransformMatrix().Mul4(local)
    }
    return local
}

func (t *Transform) GetLocalTransform() mgl32.Mat4 {
    translation := t.GetTranslationMatrix()
    rotation := t.GetRotationMatrix()
    scale := t.GetScaleMatrix()
    return translation.Mul4(rotation).Mul4(scale) // This actually represents S * R * T.. order is reversed because of how matrices work
}

func (t *Transform) GetScaleMatrix() mgl32.Mat4 {
    return mgl32.Scale3D(t.scale.X(), t.scale.Y(), t.scale.Z())
}

func (t *Transform) GetRotationMatrix() mgl32.Mat4 {
    return t.rotation.Mat4()
}

func (t *Transform) GetTranslationMatrix() mgl32.Mat4 {
    return mgl32.Translate3D(t.translation.X(), t.translation.Y(), t.translation.Z())
}

// GetPosition returns the local translation, relative to the parent if one is set.
func (t *Transform) GetPosition() mgl32.Vec3 {
    return t.translation
}

// GetWorldPosition returns the position after composing with the parent chain.
func (t *Transform) GetWorldPosition() mgl32.Vec3 {
    if t.parent == nil {
        return t.translation
    }
    return ExtractPosition(t.GetTransformMatrix())
}

func (t *Transform) GetRotation() mgl32.Quat {
    return t.rotation
}
func (t *Transform) SetRotation(rotation mgl32.Quat) {
    t.rotation = rotation
}

func (t *Transform) GetForward() mgl32.Vec3 {
    return t.rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

func (t *Transform) SetForward(direction mgl32.Vec3) {
    t.rotation = mgl32.QuatBetweenVectors(mgl32.Vec3{0, 0, -1}, direction)
}

func (t *Transform) SetPosition(position mgl32.Vec3) {
    t.translation = position
}

func (t *Transform) GetScale() mgl32.Vec3 {
    return t.scale
}

func (t *Transform) SetScale(scale mgl32.Vec3) {
    t.scale = scale
}
