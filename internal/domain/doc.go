// Package domain models weather observations fetched from the OpenWeatherMap
// current-weather API and the series derived from them.
//
// # Data Source
//
// Observations originate from https://api.openweathermap.org/data/2.5/weather,
// queried with "q=<city>&units=metric". The full JSON payload is kept on every
// stored observation as Raw, so fields that are not normalized (coordinates,
// pressure, sunrise, etc.) remain available to [BuildCurrentSnapshot].
//
// # Payload Conventions
//
// Relevant fields of the upstream payload:
//
//	name               resolved city name, may carry diacritics ("Constanța")
//	main.temp          temperature in °C (units=metric)
//	main.humidity      relative humidity in percent
//	weather[0].icon    icon code such as "04d"; some producers store a list here
//	weather[0].description
//	wind.speed         wind speed in m/s
//	dt                 upstream measurement time, Unix seconds
//	_fetched_at        added locally, RFC 3339 fetch time
//
// Any of these may be missing. Missing sub-objects produce nil fields rather
// than errors; only a payload without "main" is rejected by the provider.
//
// # City Canonicalization
//
// City names are stored in a canonical ASCII form ([CanonicalCity]): the name
// is NFKD-decomposed and every non-ASCII rune is dropped, so "Constanța"
// becomes "Constanta". Names with no ASCII content keep their original form.
// Read paths canonicalize their input the same way.
//
// # Bucketing
//
// Series points are computed per hour: a sample at minute m falls into the
// bucket starting at minute floor(m/b)*b of the same hour. When b does not
// divide 60 the last bucket of each hour is short (b=7 yields a bucket at :56
// covering four minutes). See [BucketStart].
package domain
