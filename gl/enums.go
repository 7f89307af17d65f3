// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gl

// GLenum is a native GL enumerator value.
type GLenum uint32

// Native enumerator values used by the state tracker.
const (
	GLenum_GL_NONE GLenum = 0
	GLenum_GL_ZERO GLenum = 0
	GLenum_GL_ONE  GLenum = 1

	GLenum_GL_POINTS    GLenum = 0x0000
	GLenum_GL_LINES     GLenum = 0x0001
	GLenum_GL_TRIANGLES GLenum = 0x0004

	GLenum_GL_NEVER    GLenum = 0x0200
	GLenum_GL_LESS     GLenum = 0x0201
	GLenum_GL_EQUAL    GLenum = 0x0202
	GLenum_GL_LEQUAL   GLenum = 0x0203
	GLenum_GL_GREATER  GLenum = 0x0204
	GLenum_GL_NOTEQUAL GLenum = 0x0205
	GLenum_GL_GEQUAL   GLenum = 0x0206
	GLenum_GL_ALWAYS   GLenum = 0x0207

	GLenum_GL_SRC_COLOR             GLenum = 0x0300
	GLenum_GL_ONE_MINUS_SRC_COLOR   GLenum = 0x0301
	GLenum_GL_SRC_ALPHA             GLenum = 0x0302
	GLenum_GL_ONE_MINUS_SRC_ALPHA   GLenum = 0x0303
	GLenum_GL_DST_ALPHA             GLenum = 0x0304
	GLenum_GL_ONE_MINUS_DST_ALPHA   GLenum = 0x0305
	GLenum_GL_DST_COLOR             GLenum = 0x0306
	GLenum_GL_ONE_MINUS_DST_COLOR   GLenum = 0x0307
	GLenum_GL_FUNC_ADD              GLenum = 0x8006
	GLenum_GL_MIN                   GLenum = 0x8007
	GLenum_GL_MAX                   GLenum = 0x8008
	GLenum_GL_FUNC_SUBTRACT         GLenum = 0x800A
	GLenum_GL_FUNC_REVERSE_SUBTRACT GLenum = 0x800B

	GLenum_GL_FRONT          GLenum = 0x0404
	GLenum_GL_BACK           GLenum = 0x0405
	GLenum_GL_FRONT_AND_BACK GLenum = 0x0408
	GLenum_GL_CW             GLenum = 0x0900
	GLenum_GL_CCW            GLenum = 0x0901

	GLenum_GL_KEEP      GLenum = 0x1E00
	GLenum_GL_REPLACE   GLenum = 0x1E01
	GLenum_GL_INCR      GLenum = 0x1E02
	GLenum_GL_DECR      GLenum = 0x1E03
	GLenum_GL_INVERT    GLenum = 0x150A
	GLenum_GL_INCR_WRAP GLenum = 0x8507
	GLenum_GL_DECR_WRAP GLenum = 0x8508

	GLenum_GL_CULL_FACE                     GLenum = 0x0B44
	GLenum_GL_DEPTH_TEST                    GLenum = 0x0B71
	GLenum_GL_STENCIL_TEST                  GLenum = 0x0B90
	GLenum_GL_DITHER                        GLenum = 0x0BD0
	GLenum_GL_BLEND                         GLenum = 0x0BE2
	GLenum_GL_SCISSOR_TEST                  GLenum = 0x0C11
	GLenum_GL_POLYGON_OFFSET_FILL           GLenum = 0x8037
	GLenum_GL_MULTISAMPLE                   GLenum = 0x809D
	GLenum_GL_SAMPLE_ALPHA_TO_COVERAGE      GLenum = 0x809E
	GLenum_GL_SAMPLE_ALPHA_TO_ONE           GLenum = 0x809F
	GLenum_GL_SAMPLE_COVERAGE               GLenum = 0x80A0
	GLenum_GL_TEXTURE_CUBE_MAP_SEAMLESS     GLenum = 0x884F
	GLenum_GL_RASTERIZER_DISCARD            GLenum = 0x8C89
	GLenum_GL_PRIMITIVE_RESTART_FIXED_INDEX GLenum = 0x8D69
	GLenum_GL_FRAMEBUFFER_SRGB              GLenum = 0x8DB9
	GLenum_GL_SAMPLE_MASK                   GLenum = 0x8E51
	GLenum_GL_PRIMITIVE_RESTART             GLenum = 0x8F9D

	GLenum_GL_UNPACK_ROW_LENGTH   GLenum = 0x0CF2
	GLenum_GL_UNPACK_SKIP_ROWS    GLenum = 0x0CF3
	GLenum_GL_UNPACK_SKIP_PIXELS  GLenum = 0x0CF4
	GLenum_GL_UNPACK_ALIGNMENT    GLenum = 0x0CF5
	GLenum_GL_PACK_ROW_LENGTH     GLenum = 0x0D02
	GLenum_GL_PACK_SKIP_ROWS      GLenum = 0x0D03
	GLenum_GL_PACK_SKIP_PIXELS    GLenum = 0x0D04
	GLenum_GL_PACK_ALIGNMENT      GLenum = 0x0D05
	GLenum_GL_UNPACK_SKIP_IMAGES  GLenum = 0x806D
	GLenum_GL_UNPACK_IMAGE_HEIGHT GLenum = 0x806E

	GLenum_GL_DONT_CARE                       GLenum = 0x1100
	GLenum_GL_FASTEST                         GLenum = 0x1101
	GLenum_GL_NICEST                          GLenum = 0x1102
	GLenum_GL_GENERATE_MIPMAP_HINT            GLenum = 0x8192
	GLenum_GL_FRAGMENT_SHADER_DERIVATIVE_HINT GLenum = 0x8B8B

	GLenum_GL_UNSIGNED_BYTE  GLenum = 0x1401
	GLenum_GL_UNSIGNED_SHORT GLenum = 0x1403
	GLenum_GL_INT            GLenum = 0x1404
	GLenum_GL_UNSIGNED_INT   GLenum = 0x1405
	GLenum_GL_FLOAT          GLenum = 0x1406

	GLenum_GL_TEXTURE_2D                   GLenum = 0x0DE1
	GLenum_GL_TEXTURE_3D                   GLenum = 0x806F
	GLenum_GL_TEXTURE_RECTANGLE            GLenum = 0x84F5
	GLenum_GL_TEXTURE_CUBE_MAP             GLenum = 0x8513
	GLenum_GL_TEXTURE_2D_ARRAY             GLenum = 0x8C1A
	GLenum_GL_TEXTURE_BUFFER               GLenum = 0x8C2A
	GLenum_GL_TEXTURE_EXTERNAL_OES         GLenum = 0x8D65
	GLenum_GL_TEXTURE_CUBE_MAP_ARRAY       GLenum = 0x9009
	GLenum_GL_TEXTURE_2D_MULTISAMPLE       GLenum = 0x9100
	GLenum_GL_TEXTURE_2D_MULTISAMPLE_ARRAY GLenum = 0x9102
	GLenum_GL_TEXTURE0                     GLenum = 0x84C0

	GLenum_GL_ARRAY_BUFFER              GLenum = 0x8892
	GLenum_GL_ELEMENT_ARRAY_BUFFER      GLenum = 0x8893
	GLenum_GL_PIXEL_PACK_BUFFER         GLenum = 0x88EB
	GLenum_GL_PIXEL_UNPACK_BUFFER       GLenum = 0x88EC
	GLenum_GL_UNIFORM_BUFFER            GLenum = 0x8A11
	GLenum_GL_TRANSFORM_FEEDBACK_BUFFER GLenum = 0x8C8E
	GLenum_GL_COPY_READ_BUFFER          GLenum = 0x8F36
	GLenum_GL_COPY_WRITE_BUFFER         GLenum = 0x8F37
	GLenum_GL_DRAW_INDIRECT_BUFFER      GLenum = 0x8F3F
	GLenum_GL_DISPATCH_INDIRECT_BUFFER  GLenum = 0x90EE
	GLenum_GL_SHADER_STORAGE_BUFFER     GLenum = 0x90D2
	GLenum_GL_ATOMIC_COUNTER_BUFFER     GLenum = 0x92C0

	GLenum_GL_QUERY_RESULT                          GLenum = 0x8866
	GLenum_GL_QUERY_RESULT_AVAILABLE                GLenum = 0x8867
	GLenum_GL_TIME_ELAPSED                          GLenum = 0x88BF
	GLenum_GL_PRIMITIVES_GENERATED                  GLenum = 0x8C87
	GLenum_GL_TRANSFORM_FEEDBACK_PRIMITIVES_WRITTEN GLenum = 0x8C88
	GLenum_GL_ANY_SAMPLES_PASSED                    GLenum = 0x8C2F
	GLenum_GL_ANY_SAMPLES_PASSED_CONSERVATIVE       GLenum = 0x8D6A

	GLenum_GL_READ_FRAMEBUFFER   GLenum = 0x8CA8
	GLenum_GL_DRAW_FRAMEBUFFER   GLenum = 0x8CA9
	GLenum_GL_FRAMEBUFFER        GLenum = 0x8D40
	GLenum_GL_RENDERBUFFER       GLenum = 0x8D41
	GLenum_GL_TRANSFORM_FEEDBACK GLenum = 0x8E22

	GLenum_GL_READ_ONLY  GLenum = 0x88B8
	GLenum_GL_WRITE_ONLY GLenum = 0x88B9
	GLenum_GL_READ_WRITE GLenum = 0x88BA
	GLenum_GL_R32UI      GLenum = 0x8236
	GLenum_GL_RGBA8      GLenum = 0x8058
)

// Extension names checked by the state tracker.
const (
	ExtARBViewportArray      = "GL_ARB_viewport_array"
	ExtOESViewportArray      = "GL_OES_viewport_array"
	ExtARBFramebufferSRGB    = "GL_ARB_framebuffer_sRGB"
	ExtEXTSRGBWriteControl   = "GL_EXT_sRGB_write_control"
	ExtEXTMultisampleCompat  = "GL_EXT_multisample_compatibility"
	ExtARBSeamlessCubeMap    = "GL_ARB_seamless_cube_map"
	ExtARBTextureMultisample = "GL_ARB_texture_multisample"
	ExtOVRMultiview          = "GL_OVR_multiview"
	ExtOVRMultiview2         = "GL_OVR_multiview2"
	ExtEXTFramebufferBlit    = "GL_EXT_framebuffer_blit"
	ExtANGLEFramebufferBlit  = "GL_ANGLE_framebuffer_blit"
	ExtNVFramebufferBlit     = "GL_NV_framebuffer_blit"
	ExtARBES3Compatibility   = "GL_ARB_ES3_compatibility"
)
