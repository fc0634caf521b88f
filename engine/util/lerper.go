package util

type Lerper[V any] struct {
    start, finish V
    duration      float64
    timer         float64
    ease          func(float64) float64
    setValue      func(V)
    lerpValue     func(V, V, float64) V
    isDone        bool
}

func NewLerper[V any](lerpValue func(V, V, float64) V, setValue func(V), start, finish V, duration float64) *Lerper[V] {
    return &Lerper[V]{
        start:     start,
        finish:    finish,
        duration:  duration,
        ease:      EaseLinear,
        lerpValue: lerpValue,
        setValue:  setValue,
    }
}

// NewEasedLerper runs the interpolation factor through an easing curve. The
// curve must map 0 to 0 and 1 to 1, the finish value is always set exactly.
func NewEasedLerper[V any](lerpValue func(V, V, float64) V, setValue func(V), start, finish V, duration float64, ease func(float64) float64) *Lerper[V] {
    return &Lerper[V]{
        start:     start,
        finish:    finish,
        duration:  duration,
        ease:      ease,
        lerpValue: lerpValue,
        setValue:  setValue,
    }
}

func (l *Lerper[V]) IsDone() bool {
    return l.isDone
}

// Progress returns the eased interpolation factor, 1.0 once finished.
func (l *Lerper[V]) Progress() float64 {
    if l.isDone || l.timer > l.duration {
        return 1.0
    }
    return l.ease(l.timer / l.duration)
}

func (l *Lerper[V]) Update(deltaTime float64) bool {
    if l.isDone {
        return true
    }

    l.timer += deltaTime
    if l.timer > l.duration {
        l.setValue(l.finish)
        l.isDone = true
        return l.isDone
    }

    percent := l.ease(l.timer / l.duration)
    lerpedValue := l.lerpValue(l.start, l.finish, percent)
    l.setValue(lerpedValue)
    return false
}
