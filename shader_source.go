package main

const (
	aPosition = 0
	aColor    = 1
)

const vsSource = `#version 300 es
	layout (location = 0) in vec3 aPosition;
	layout (location = 1) in vec3 aColor;
	uniform mat4 model;
	uniform mat4 view;
	uniform mat4 perspective;
	out lowp vec4 vColor;

	void main(void) {
		gl_Position = perspective * view * model * vec4(aPosition, 1.0);
		vColor = vec4(aColor, 1.0);
	}
`

const fsSource = `#version 300 es
	in lowp vec4 vColor;
	out lowp vec4 outColor;

	void main(void) {
		outColor = vColor;
	}
`
