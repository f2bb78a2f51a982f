package basename

// Isqrt exposes isqrt to the external test package.
var Isqrt = isqrt
