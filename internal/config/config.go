// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1024
	ScreenHeight = 768

	FixedDelta   = 1.0 / 60.0 // шаг интегрирования эмиттеров, не зависит от FPS
	MaxDeltaTime = 0.06

	DefaultPoolSpeed    = 100.0 // единиц в секунду
	PlayerPoolSpeed     = 400.0
	AdversaryFireSpeed  = 50.0
	DefaultDamping      = 0.99
	DefaultSpawnRate    = 1.0
	DefaultLifespanMs   = 10000.0
	DefaultEmitterSize  = 150.0
	DefaultChildSize    = 10.0
	ExpireNowLifespanMs = 0.0

	PlayerMass         = 1.0
	PlayerHealth       = 100
	PlayerBodyWidth    = 150.0
	PlayerBodyHeight   = 50.0
	PlayerShotSpeed    = 100.0 // длина вектора скорости снаряда, только направление важно
	PlayerShotLifespan = 2000.0
	PlayerThrust       = 20.0 // множитель силы на единицу скорости игрока
	PlayerTorque       = 100.0

	AdversaryMass          = 2.0
	AdversaryHealth        = 500
	AdversaryBodySize      = 150.0
	AdversaryRate          = 3.0
	AdversaryThrust        = 100.0
	AdversaryCircleForce   = 50.0
	OffscreenX, OffscreenY = -1000.0, -1000.0

	BodyHitDamage       = 100 // урон противнику от снаряда игрока
	ProjectileHitDamage = 1   // урон игроку от снаряда противника
	RamDamage           = 5   // урон игроку при столкновении корпусов
	ScorePerIntercept   = 1

	EffectGroupSize      = 20
	EffectParticleRadius = 5.0
	EffectLifespanMs     = 1000.0
	EffectBurstSpeed     = 282.842712 // |(200, 200)|
	EffectParticleMass   = 1.0
	EffectImpulse        = 1000.0
	EffectGravity        = -20.0
	EffectTurbulence     = 20.0
)

var (
	BackgroundColor    = color.RGBA{20, 20, 30, 255}
	PlayerColor        = color.RGBA{50, 205, 50, 255}
	AdversaryColor     = color.RGBA{220, 60, 60, 255}
	PlayerShotColor    = color.RGBA{255, 215, 0, 255}
	AdversaryShotColor = color.RGBA{180, 50, 230, 255}
	EffectColor        = color.RGBA{255, 140, 0, 230}
	TextLightColor     = color.RGBA{240, 240, 240, 255}
	HeadingColor       = color.RGBA{240, 240, 240, 200}
	EndScreenDimColor  = color.RGBA{0, 0, 0, 160}
	StartScreenAccent  = color.RGBA{70, 130, 180, 220}
	StrokeWidth        = float32(2.0)
)
