package main

// ProgressInterval is how many linked cards pass between progress lines.
const ProgressInterval = 50
